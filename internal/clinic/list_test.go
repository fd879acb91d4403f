package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProvider(t *testing.T, name string) Provider {
	t.Helper()
	p, ok := FindProvider(name)
	require.True(t, ok, "provider %s", name)
	return p
}

func mustSlot(t *testing.T, code string) Timeslot {
	t.Helper()
	s, ok := FindTimeslot(code)
	require.True(t, ok, "slot %s", code)
	return s
}

func appt(t *testing.T, date Date, slotCode, first, last, provider string) Appointment {
	t.Helper()
	return Appointment{
		Date:     date,
		Timeslot: mustSlot(t, slotCode),
		Patient:  Profile{FirstName: first, LastName: last, DateOfBirth: Date{1990, 1, 1}},
		Provider: mustProvider(t, provider),
	}
}

func TestListAddContainsRemove(t *testing.T) {
	l := NewAppointmentList()
	a := appt(t, Date{2025, 12, 19}, "1", "John", "Doe", "PATEL")

	assert.Zero(t, l.Size())
	assert.False(t, l.Contains(a))

	l.Add(a)
	assert.Equal(t, 1, l.Size())
	assert.True(t, l.Contains(a))

	// Equality ignores the provider: the same patient/date/slot booked
	// with a different provider is the same booking.
	other := a
	other.Provider = mustProvider(t, "LIM")
	assert.True(t, l.Contains(other))

	l.Remove(other)
	assert.Zero(t, l.Size())
	assert.False(t, l.Contains(a))
}

func TestListRemoveKeepsOrder(t *testing.T) {
	l := NewAppointmentList()
	a := appt(t, Date{2025, 12, 19}, "1", "A", "One", "PATEL")
	b := appt(t, Date{2025, 12, 19}, "2", "B", "Two", "PATEL")
	c := appt(t, Date{2025, 12, 19}, "3", "C", "Three", "PATEL")
	l.Add(a)
	l.Add(b)
	l.Add(c)

	l.Remove(b)
	require.Equal(t, 2, l.Size())
	assert.True(t, l.Get(0).Equal(a))
	assert.True(t, l.Get(1).Equal(c))

	// Removing an absent appointment is a no-op.
	l.Remove(b)
	assert.Equal(t, 2, l.Size())
}

func TestSortByPatient(t *testing.T) {
	l := NewAppointmentList()
	// Same patient on two dates: the key is the patient only, so their
	// two appointments must keep their insertion order.
	late := appt(t, Date{2025, 12, 22}, "2", "John", "Doe", "PATEL")
	early := appt(t, Date{2025, 12, 19}, "1", "John", "Doe", "PATEL")
	adams := appt(t, Date{2025, 12, 23}, "3", "Amy", "Adams", "KAUR")
	l.Add(late)
	l.Add(early)
	l.Add(adams)

	l.SortByPatient()

	assert.True(t, l.Get(0).Equal(adams))
	assert.True(t, l.Get(1).Equal(late), "ties keep insertion order")
	assert.True(t, l.Get(2).Equal(early))

	// Re-sorting an already sorted list reproduces the same order.
	l.SortByPatient()
	assert.True(t, l.Get(1).Equal(late))
	assert.True(t, l.Get(2).Equal(early))
}

func TestSortByLocation(t *testing.T) {
	l := NewAppointmentList()
	somerset := appt(t, Date{2025, 12, 19}, "1", "A", "One", "PATEL")     // Somerset
	mercer := appt(t, Date{2025, 12, 23}, "2", "B", "Two", "KAUR")        // Mercer
	middlesex := appt(t, Date{2025, 12, 22}, "3", "C", "Three", "TAYLOR") // Middlesex
	union2 := appt(t, Date{2025, 12, 19}, "4", "D", "Four", "ZIMNES")     // Union
	union1 := appt(t, Date{2025, 12, 19}, "2", "E", "Five", "HARPER")     // Union, earlier slot
	l.Add(somerset)
	l.Add(mercer)
	l.Add(middlesex)
	l.Add(union2)
	l.Add(union1)

	l.SortByLocation()

	assert.True(t, l.Get(0).Equal(mercer))
	assert.True(t, l.Get(1).Equal(middlesex))
	assert.True(t, l.Get(2).Equal(somerset))
	assert.True(t, l.Get(3).Equal(union1), "same county and date ordered by slot")
	assert.True(t, l.Get(4).Equal(union2))
}

func TestSortByAppointment(t *testing.T) {
	l := NewAppointmentList()
	d19s1Patel := appt(t, Date{2025, 12, 19}, "1", "A", "One", "PATEL")
	d19s1Harper := appt(t, Date{2025, 12, 19}, "1", "B", "Two", "HARPER")
	d19s2 := appt(t, Date{2025, 12, 19}, "2", "C", "Three", "KAUR")
	d18 := appt(t, Date{2025, 12, 18}, "6", "D", "Four", "RAMESH")
	l.Add(d19s2)
	l.Add(d19s1Patel)
	l.Add(d18)
	l.Add(d19s1Harper)

	l.SortByAppointment()

	assert.True(t, l.Get(0).Equal(d18))
	assert.True(t, l.Get(1).Equal(d19s1Harper), "provider name breaks date/slot ties")
	assert.True(t, l.Get(2).Equal(d19s1Patel))
	assert.True(t, l.Get(3).Equal(d19s2))
}

func TestAppointmentString(t *testing.T) {
	a := appt(t, Date{2025, 12, 19}, "1", "John", "Doe", "PATEL")
	assert.Equal(t,
		"12/19/2025 9:00 AM John Doe 1/1/1990 [PATEL, BRIDGEWATER, Somerset 08807, FAMILY]",
		a.String())
}
