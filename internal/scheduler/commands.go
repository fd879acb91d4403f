package scheduler

import (
	"fmt"

	"github.com/ruclinic/clinic-scheduler/internal/clinic"
)

// schedule handles the S command:
// S,date,slot,first,last,dob,providerLastName
func (s *Scheduler) schedule(fields []string) Outcome {
	if len(fields) < 7 {
		fmt.Fprintln(s.out, "Invalid command.")
		return OutcomeInvalid
	}
	dateIn, slotIn, first, last, dobIn, providerIn :=
		fields[1], fields[2], fields[3], fields[4], fields[5], fields[6]

	slot, ok := clinic.FindTimeslot(slotIn)
	if !ok {
		fmt.Fprintf(s.out, "%s is not a valid time slot.\n", slotIn)
		return OutcomeRejected
	}

	apptDate, apptErr := clinic.ParseDate(dateIn)
	validAppt := apptErr == nil && apptDate.IsValid()
	dob, dobErr := clinic.ParseDate(dobIn)
	validDob := dobErr == nil && dob.IsValid()
	if !validAppt || !validDob {
		if !validAppt {
			fmt.Fprintf(s.out, "Appointment date: %s is not a valid calendar date.\n", dateIn)
		}
		if !validDob {
			fmt.Fprintf(s.out, "Patient dob: %s is not a valid calendar date.\n", dobIn)
		}
		return OutcomeRejected
	}

	today := clinic.DateOf(s.now())
	if dob.After(today) {
		fmt.Fprintf(s.out, "Patient dob: %s is a date after today.\n", dobIn)
		return OutcomeRejected
	}
	if !apptDate.After(today) {
		fmt.Fprintf(s.out, "Appointment date: %s is today or a date before today.\n", dateIn)
		return OutcomeRejected
	}
	if !apptDate.WithinMonths(today, s.window) {
		fmt.Fprintf(s.out, "Appointment date: %s is not within six months.\n", dateIn)
		return OutcomeRejected
	}
	if apptDate.IsWeekend() {
		fmt.Fprintf(s.out, "Appointment date: %s is Saturday or Sunday.\n", dateIn)
		return OutcomeRejected
	}

	provider, ok := clinic.FindProvider(providerIn)
	if !ok {
		fmt.Fprintf(s.out, "%s - provider doesn't exist.\n", providerIn)
		return OutcomeRejected
	}
	if !s.providerFree(provider, apptDate, slot, nil) {
		fmt.Fprintf(s.out, "%s is not available at slot %s.\n", provider, slotIn)
		return OutcomeRejected
	}

	profile := clinic.Profile{FirstName: first, LastName: last, DateOfBirth: dob}
	appt := clinic.Appointment{Date: apptDate, Timeslot: slot, Patient: profile, Provider: provider}
	if s.appointments.Contains(appt) {
		fmt.Fprintf(s.out, "%s has an existing appointment at the same time slot.\n", profile)
		return OutcomeRejected
	}

	patient := s.record.FindOrCreate(profile)
	s.appointments.Add(appt)
	patient.AddVisit(appt)

	fmt.Fprintf(s.out, "%s booked.\n", appt)
	return OutcomeAccepted
}

// cancel handles the C command. The provider field is parsed but does not
// participate in matching: a booking is identified by date, slot and
// patient alone.
func (s *Scheduler) cancel(fields []string) Outcome {
	if len(fields) < 7 {
		fmt.Fprintln(s.out, "Invalid command.")
		return OutcomeInvalid
	}
	dateIn, slotIn, first, last, dobIn, providerIn :=
		fields[1], fields[2], fields[3], fields[4], fields[5], fields[6]

	slot, ok := clinic.FindTimeslot(slotIn)
	if !ok {
		fmt.Fprintf(s.out, "%s is not a valid time slot.\n", slotIn)
		return OutcomeRejected
	}
	date, err := clinic.ParseDate(dateIn)
	if err != nil {
		fmt.Fprintf(s.out, "Appointment date: %s is not a valid calendar date.\n", dateIn)
		return OutcomeRejected
	}
	dob, err := clinic.ParseDate(dobIn)
	if err != nil {
		fmt.Fprintf(s.out, "Patient dob: %s is not a valid calendar date.\n", dobIn)
		return OutcomeRejected
	}

	profile := clinic.Profile{FirstName: first, LastName: last, DateOfBirth: dob}
	provider, _ := clinic.FindProvider(providerIn)
	candidate := clinic.Appointment{Date: date, Timeslot: slot, Patient: profile, Provider: provider}

	if s.appointments.Contains(candidate) {
		s.appointments.Remove(candidate)
		fmt.Fprintf(s.out, "%s %s %s %s %s has been canceled.\n",
			date, slot.Clock12(), first, last, dob)
		return OutcomeAccepted
	}

	fmt.Fprintf(s.out, "%s %s %s %s %s does not exist.\n",
		date, slot.Clock12(), first, last, dob)
	return OutcomeRejected
}

// reschedule handles the R command:
// R,date,originalSlot,first,last,dob,newSlot
// The provider carries over from the matched appointment.
func (s *Scheduler) reschedule(fields []string) Outcome {
	if len(fields) < 7 {
		fmt.Fprintln(s.out, "Invalid command.")
		return OutcomeInvalid
	}
	dateIn, origIn, first, last, dobIn, newIn :=
		fields[1], fields[2], fields[3], fields[4], fields[5], fields[6]

	origSlot, ok := clinic.FindTimeslot(origIn)
	if !ok {
		fmt.Fprintf(s.out, "%s is not a valid time slot.\n", origIn)
		return OutcomeRejected
	}
	date, err := clinic.ParseDate(dateIn)
	if err != nil {
		fmt.Fprintf(s.out, "Appointment date: %s is not a valid calendar date.\n", dateIn)
		return OutcomeRejected
	}
	dob, err := clinic.ParseDate(dobIn)
	if err != nil {
		fmt.Fprintf(s.out, "Patient dob: %s is not a valid calendar date.\n", dobIn)
		return OutcomeRejected
	}

	profile := clinic.Profile{FirstName: first, LastName: last, DateOfBirth: dob}
	existing := s.findBooking(date, origSlot, profile)
	if existing == nil {
		fmt.Fprintf(s.out, "%s %s %s %s %s does not exist.\n",
			dateIn, origSlot.Clock12(), first, last, dobIn)
		return OutcomeRejected
	}

	newSlot, ok := clinic.FindTimeslot(newIn)
	if !ok {
		fmt.Fprintf(s.out, "%s is not a valid time slot.\n", newIn)
		return OutcomeRejected
	}

	provider := existing.Provider
	if !s.providerFree(provider, date, newSlot, existing) {
		fmt.Fprintf(s.out, "[%s] is not available at slot %s.\n",
			provider, newSlot.Clock12())
		return OutcomeRejected
	}

	s.appointments.Remove(*existing)
	moved := clinic.Appointment{Date: date, Timeslot: newSlot, Patient: profile, Provider: provider}
	s.appointments.Add(moved)

	fmt.Fprintf(s.out, "Rescheduled to %s %s %s %s [%s]\n",
		dateIn, newSlot.Clock12(), first, last, provider)
	return OutcomeAccepted
}
