package clinic

import "fmt"

// Appointment is one scheduled booking. Values are immutable once built;
// rescheduling replaces an appointment rather than mutating it.
type Appointment struct {
	Date     Date
	Timeslot Timeslot
	Patient  Profile
	Provider Provider
}

// Equal reports whether two appointments are the same booking. The
// provider deliberately does not participate: the same patient at the
// same date and slot is one booking no matter who it is with.
func (a Appointment) Equal(other Appointment) bool {
	return a.Date == other.Date &&
		a.Timeslot.Code == other.Timeslot.Code &&
		a.Patient.Equal(other.Patient)
}

// Compare orders appointments by date, then timeslot, then patient.
func (a Appointment) Compare(other Appointment) int {
	if c := a.Date.Compare(other.Date); c != 0 {
		return c
	}
	if c := a.Timeslot.Compare(other.Timeslot); c != 0 {
		return c
	}
	return a.Patient.Compare(other.Patient)
}

// String renders the full printed form:
// M/D/YYYY H:MM AM First Last M/D/YYYY [NAME, CITY, County Zip, SPECIALTY]
func (a Appointment) String() string {
	return fmt.Sprintf("%s %s %s [%s]",
		a.Date, a.Timeslot.Clock12(), a.Patient, a.Provider)
}
