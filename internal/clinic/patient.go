package clinic

// Visit records one completed appointment in a patient's history.
type Visit struct {
	Appointment Appointment
}

// Patient is a registered person together with their visit history,
// most recent visit first.
type Patient struct {
	Profile Profile
	visits  []Visit
}

// NewPatient registers a patient with an empty visit history.
func NewPatient(profile Profile) *Patient {
	return &Patient{Profile: profile}
}

// AddVisit prepends a completed appointment to the visit history.
func (p *Patient) AddVisit(appt Appointment) {
	p.visits = append([]Visit{{Appointment: appt}}, p.visits...)
}

// Visits returns the visit history, most recent first.
func (p *Patient) Visits() []Visit {
	out := make([]Visit, len(p.visits))
	copy(out, p.visits)
	return out
}

// Charge totals the specialty charge of every visit.
func (p *Patient) Charge() int {
	total := 0
	for _, v := range p.visits {
		total += v.Appointment.Provider.Specialty.Charge
	}
	return total
}

// Equal delegates to profile equality.
func (p *Patient) Equal(other *Patient) bool {
	return p.Profile.Equal(other.Profile)
}

// Compare delegates to profile ordering.
func (p *Patient) Compare(other *Patient) int {
	return p.Profile.Compare(other.Profile)
}

func (p *Patient) String() string {
	return p.Profile.String()
}
