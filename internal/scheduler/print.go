package scheduler

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ruclinic/clinic-scheduler/internal/clinic"
)

const endOfList = "** end of list **"

// amountPrinter groups thousands in billing amounts ($1,050.00).
var amountPrinter = message.NewPrinter(language.English)

func (s *Scheduler) printByAppointment() Outcome {
	if s.appointments.Size() == 0 {
		fmt.Fprintln(s.out, "The schedule calendar is empty.")
		return OutcomeRejected
	}
	s.appointments.SortByAppointment()
	s.printAll("** Appointments ordered by date/time/provider **")
	return OutcomeAccepted
}

func (s *Scheduler) printByPatient() Outcome {
	if s.appointments.Size() == 0 {
		fmt.Fprintln(s.out, "The schedule calendar is empty.")
		return OutcomeRejected
	}
	s.appointments.SortByPatient()
	s.printAll("** Appointments ordered by patient/date/time **")
	return OutcomeAccepted
}

func (s *Scheduler) printByLocation() Outcome {
	if s.appointments.Size() == 0 {
		fmt.Fprintln(s.out, "The schedule calendar is empty.")
		return OutcomeRejected
	}
	s.appointments.SortByLocation()
	s.printAll("** Appointments ordered by county/date/time **")
	return OutcomeAccepted
}

func (s *Scheduler) printAll(header string) {
	fmt.Fprintln(s.out, header)
	for i := 0; i < s.appointments.Size(); i++ {
		fmt.Fprintln(s.out, s.appointments.Get(i))
	}
	fmt.Fprintln(s.out, endOfList)
}

// printBillingStatements emits one numbered line per patient in order of
// first appearance in the patient-sorted appointment sequence.
func (s *Scheduler) printBillingStatements() Outcome {
	statements := clinic.AggregateBilling(s.appointments)

	fmt.Fprintln(s.out, "** Billing statement ordered by patient **")
	for i, st := range statements {
		fmt.Fprintf(s.out, "(%d) %s %s %s [amount due: $%s]\n",
			i+1,
			st.Patient.FirstName,
			st.Patient.LastName,
			st.Patient.DateOfBirth,
			amountPrinter.Sprintf("%.2f", st.Total()))
	}
	fmt.Fprintln(s.out, endOfList)
	return OutcomeAccepted
}
