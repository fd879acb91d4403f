package scheduler

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ruclinic/clinic-scheduler/internal/clinic"
	"github.com/ruclinic/clinic-scheduler/internal/config"
)

// Outcome classifies how a dispatched command ended.
type Outcome int

const (
	OutcomeAccepted Outcome = iota // command applied or report printed
	OutcomeRejected                // well-formed command refused by a business rule
	OutcomeInvalid                 // unrecognized command or malformed fields
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "invalid"
	}
}

// Scheduler owns the appointment list and patient directory and applies
// line-oriented commands against them. One instance, one goroutine: each
// command is fully processed before the next line is read, so no locking
// is needed.
type Scheduler struct {
	appointments *clinic.AppointmentList
	record       *clinic.MedicalRecord
	out          io.Writer
	log          zerolog.Logger
	window       int
	now          func() time.Time
}

// New builds a scheduler writing its user-facing output to out.
func New(cfg config.Config, out io.Writer, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		appointments: clinic.NewAppointmentList(),
		record:       clinic.NewMedicalRecord(),
		out:          out,
		log:          log,
		window:       cfg.BookingWindowMonths,
		now:          time.Now,
	}
}

// Run reads commands line by line until Q or EOF. Blank lines are
// skipped; everything else goes through Dispatch.
func (s *Scheduler) Run(in io.Reader) error {
	fmt.Fprintln(s.out, "Scheduler is running.")

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "Q" {
			fmt.Fprintln(s.out, "Scheduler has been terminated.")
			return nil
		}
		s.Dispatch(line)
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Dispatch parses one command line, routes it, and reports how it ended.
func (s *Scheduler) Dispatch(line string) Outcome {
	start := time.Now()

	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	cmd := fields[0]

	var outcome Outcome
	switch cmd {
	case "S":
		outcome = s.schedule(fields)
	case "C":
		outcome = s.cancel(fields)
	case "R":
		outcome = s.reschedule(fields)
	case "PA":
		outcome = s.printByAppointment()
	case "PP":
		outcome = s.printByPatient()
	case "PL":
		outcome = s.printByLocation()
	case "PS":
		outcome = s.printBillingStatements()
	default:
		fmt.Fprintln(s.out, "Invalid command!")
		outcome = OutcomeInvalid
	}

	s.log.Debug().
		Str("request_id", uuid.NewString()).
		Str("command", cmd).
		Stringer("outcome", outcome).
		Dur("took", time.Since(start)).
		Msg("command processed")

	return outcome
}

// providerFree reports whether the provider has no booking at the given
// date and slot. skip, when non-nil, is an appointment being moved and
// does not count against its own provider.
func (s *Scheduler) providerFree(p clinic.Provider, date clinic.Date, slot clinic.Timeslot, skip *clinic.Appointment) bool {
	for i := 0; i < s.appointments.Size(); i++ {
		a := s.appointments.Get(i)
		if skip != nil && a.Equal(*skip) {
			continue
		}
		if a.Provider.Name == p.Name && a.Date == date && a.Timeslot.Code == slot.Code {
			return false
		}
	}
	return true
}

// findBooking locates the appointment with the given date, slot and
// patient, or returns nil.
func (s *Scheduler) findBooking(date clinic.Date, slot clinic.Timeslot, patient clinic.Profile) *clinic.Appointment {
	for i := 0; i < s.appointments.Size(); i++ {
		a := s.appointments.Get(i)
		if a.Date == date && a.Timeslot.Code == slot.Code && a.Patient.Equal(patient) {
			return &a
		}
	}
	return nil
}
