package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/ruclinic/clinic-scheduler/internal/clinic"
	"github.com/ruclinic/clinic-scheduler/internal/config"
	"github.com/ruclinic/clinic-scheduler/internal/logging"
	"github.com/ruclinic/clinic-scheduler/internal/scheduler"
)

// The simulator feeds a stream of generated commands through a scheduler
// and reports per-command-kind outcome counts and latencies. Commands are
// dispatched sequentially: the scheduler is single-threaded by design.

type opMetrics struct {
	Total     int
	Accepted  int
	Rejected  int
	Invalid   int
	Latencies []time.Duration
}

func (m *opMetrics) Record(latency time.Duration, outcome scheduler.Outcome) {
	m.Total++
	switch outcome {
	case scheduler.OutcomeAccepted:
		m.Accepted++
	case scheduler.OutcomeRejected:
		m.Rejected++
	default:
		m.Invalid++
	}
	m.Latencies = append(m.Latencies, latency)
}

func (m *opMetrics) Stats() (avg, min, max, p50, p95 time.Duration) {
	if len(m.Latencies) == 0 {
		return 0, 0, 0, 0, 0
	}

	latencies := make([]time.Duration, len(m.Latencies))
	copy(latencies, m.Latencies)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	avg = sum / time.Duration(len(latencies))
	min = latencies[0]
	max = latencies[len(latencies)-1]
	p50 = latencies[len(latencies)*50/100]
	p95Idx := len(latencies) * 95 / 100
	if p95Idx >= len(latencies) {
		p95Idx = len(latencies) - 1
	}
	p95 = latencies[p95Idx]
	return avg, min, max, p50, p95
}

type simMetrics struct {
	Schedule   opMetrics
	Cancel     opMetrics
	Reschedule opMetrics
	Print      opMetrics
}

type booking struct {
	date    string
	slot    int
	first   string
	last    string
	dob     string
	provider string
}

type simulator struct {
	faker    *gofakeit.Faker
	rng      *rand.Rand
	sched    *scheduler.Scheduler
	profiles []booking // patient pool with empty date/slot
	issued   []booking
	metrics  simMetrics
}

func simulateCmd() *cobra.Command {
	var (
		commands int
		patients int
		seed     int64
		echo     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Feed generated commands through the scheduler and report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if commands <= 0 {
				return fmt.Errorf("--commands must be > 0")
			}
			if patients <= 0 {
				return fmt.Errorf("--patients must be > 0")
			}

			log := logging.New("clinic-simulator", cfg.Env, cfg.LogLevel)

			var out io.Writer = io.Discard
			if echo {
				out = os.Stdout
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			faker := gofakeit.New(uint64(seed))
			rng := rand.New(rand.NewSource(seed))

			sim := &simulator{
				faker: faker,
				rng:   rng,
				sched: scheduler.New(cfg, out, log),
			}
			sim.buildPatientPool(patients)

			log.Info().
				Int("commands", commands).
				Int("patients", patients).
				Int64("seed", seed).
				Msg("simulation starting")

			sim.run(commands)
			sim.printReport(commands)
			return nil
		},
	}

	cmd.Flags().IntVar(&commands, "commands", 1000, "number of commands to generate")
	cmd.Flags().IntVar(&patients, "patients", 50, "size of the generated patient pool")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&echo, "echo", false, "echo scheduler output to stdout")
	return cmd
}

func (s *simulator) buildPatientPool(n int) {
	for i := 0; i < n; i++ {
		dob := s.faker.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC))
		s.profiles = append(s.profiles, booking{
			first: s.faker.FirstName(),
			last:  s.faker.LastName(),
			dob:   formatDate(dob),
		})
	}
}

func (s *simulator) run(commands int) {
	for i := 0; i < commands; i++ {
		r := s.rng.Float64()
		switch {
		case r < 0.60:
			s.doSchedule()
		case r < 0.75:
			s.doCancel()
		case r < 0.90:
			s.doReschedule()
		default:
			s.doPrint()
		}
	}
}

func (s *simulator) doSchedule() {
	p := s.profiles[s.rng.Intn(len(s.profiles))]

	// Mostly bookable dates, with a tail of weekend, past and far-out
	// dates so rejection paths get exercised too.
	apptDate := formatDate(time.Now().AddDate(0, 0, 1+s.rng.Intn(150)))
	if s.rng.Float64() < 0.10 {
		apptDate = formatDate(time.Now().AddDate(0, 0, -s.rng.Intn(30)))
	} else if s.rng.Float64() < 0.05 {
		apptDate = formatDate(time.Now().AddDate(1, 0, 0))
	}

	slot := 1 + s.rng.Intn(6)
	if s.rng.Float64() < 0.05 {
		slot = 7 + s.rng.Intn(3)
	}

	providers := clinic.Providers()
	provider := providers[s.rng.Intn(len(providers))].Name
	if s.rng.Float64() < 0.05 {
		provider = strings.ToUpper(s.faker.LastName())
	}

	line := fmt.Sprintf("S,%s,%d,%s,%s,%s,%s", apptDate, slot, p.first, p.last, p.dob, provider)

	start := time.Now()
	outcome := s.sched.Dispatch(line)
	s.metrics.Schedule.Record(time.Since(start), outcome)

	if outcome == scheduler.OutcomeAccepted {
		s.issued = append(s.issued, booking{
			date: apptDate, slot: slot,
			first: p.first, last: p.last, dob: p.dob, provider: provider,
		})
	}
}

func (s *simulator) doCancel() {
	b, ok := s.takeIssued()
	if !ok {
		b = s.randomUnissued()
	}

	line := fmt.Sprintf("C,%s,%d,%s,%s,%s,%s", b.date, b.slot, b.first, b.last, b.dob, b.provider)

	start := time.Now()
	outcome := s.sched.Dispatch(line)
	s.metrics.Cancel.Record(time.Since(start), outcome)
}

func (s *simulator) doReschedule() {
	b, ok := s.takeIssued()
	if !ok {
		b = s.randomUnissued()
	}
	newSlot := 1 + s.rng.Intn(6)

	line := fmt.Sprintf("R,%s,%d,%s,%s,%s,%d", b.date, b.slot, b.first, b.last, b.dob, newSlot)

	start := time.Now()
	outcome := s.sched.Dispatch(line)
	s.metrics.Reschedule.Record(time.Since(start), outcome)

	if ok && outcome == scheduler.OutcomeAccepted {
		b.slot = newSlot
		s.issued = append(s.issued, b)
	}
}

func (s *simulator) doPrint() {
	cmds := []string{"PA", "PP", "PL", "PS"}
	line := cmds[s.rng.Intn(len(cmds))]

	start := time.Now()
	outcome := s.sched.Dispatch(line)
	s.metrics.Print.Record(time.Since(start), outcome)
}

// takeIssued removes and returns a random live booking.
func (s *simulator) takeIssued() (booking, bool) {
	if len(s.issued) == 0 {
		return booking{}, false
	}
	i := s.rng.Intn(len(s.issued))
	b := s.issued[i]
	s.issued = append(s.issued[:i], s.issued[i+1:]...)
	return b, true
}

// randomUnissued fabricates a booking that almost certainly does not
// exist, to exercise the not-found paths.
func (s *simulator) randomUnissued() booking {
	p := s.profiles[s.rng.Intn(len(s.profiles))]
	return booking{
		date:    formatDate(time.Now().AddDate(0, 0, 1+s.rng.Intn(150))),
		slot:    1 + s.rng.Intn(6),
		first:   p.first,
		last:    p.last,
		dob:     p.dob,
		provider: "PATEL",
	}
}

func (s *simulator) printReport(commands int) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("SIMULATION REPORT")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Commands: %d\n", commands)
	fmt.Println()

	printOperationReport("Schedule", &s.metrics.Schedule)
	printOperationReport("Cancel", &s.metrics.Cancel)
	printOperationReport("Reschedule", &s.metrics.Reschedule)
	printOperationReport("Print", &s.metrics.Print)
}

func printOperationReport(name string, m *opMetrics) {
	if m.Total == 0 {
		return
	}

	avg, min, max, p50, p95 := m.Stats()

	fmt.Printf("%s:\n", name)
	fmt.Printf("  Total: %d\n", m.Total)
	fmt.Printf("  Accepted: %d (%.1f%%)\n", m.Accepted, float64(m.Accepted)/float64(m.Total)*100)
	if m.Rejected > 0 {
		fmt.Printf("  Rejected: %d (%.1f%%)\n", m.Rejected, float64(m.Rejected)/float64(m.Total)*100)
	}
	if m.Invalid > 0 {
		fmt.Printf("  Invalid: %d (%.1f%%)\n", m.Invalid, float64(m.Invalid)/float64(m.Total)*100)
	}
	fmt.Printf("  Latency: avg=%s min=%s max=%s p50=%s p95=%s\n",
		avg, min, max, p50, p95)
	fmt.Println()
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
