package clinic

import "fmt"

// BillingStatement accumulates the charge total for one patient.
type BillingStatement struct {
	Patient Profile
	total   float64
}

// NewBillingStatement opens a statement with an initial charge.
func NewBillingStatement(patient Profile, initial float64) *BillingStatement {
	return &BillingStatement{Patient: patient, total: initial}
}

// AddAmount adds a further charge to the statement.
func (b *BillingStatement) AddAmount(amount float64) {
	b.total += amount
}

// Total returns the accumulated amount due.
func (b *BillingStatement) Total() float64 {
	return b.total
}

func (b *BillingStatement) String() string {
	return fmt.Sprintf("%s: $%.2f", b.Patient, b.total)
}

// AggregateBilling sorts the list into patient order and derives one
// statement per patient, charged the fixed specialty rate per
// appointment. Statements come back in order of the patient's first
// appearance in the sorted sequence.
func AggregateBilling(l *AppointmentList) []*BillingStatement {
	l.SortByPatient()

	var statements []*BillingStatement
	for i := 0; i < l.Size(); i++ {
		appt := l.Get(i)
		rate := float64(appt.Provider.Specialty.Charge)

		found := false
		for _, st := range statements {
			if st.Patient.Equal(appt.Patient) {
				st.AddAmount(rate)
				found = true
				break
			}
		}
		if !found {
			statements = append(statements, NewBillingStatement(appt.Patient, rate))
		}
	}
	return statements
}
