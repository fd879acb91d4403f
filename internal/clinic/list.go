package clinic

import "sort"

// AppointmentList is the store of active appointments. It does not
// enforce uniqueness on Add; callers check Contains first. Removal keeps
// storage dense. The three sorts mutate the stored order in place, since
// printing and billing order are observable contracts.
type AppointmentList struct {
	appointments []Appointment
}

// NewAppointmentList creates an empty list.
func NewAppointmentList() *AppointmentList {
	return &AppointmentList{}
}

func (l *AppointmentList) find(appt Appointment) int {
	for i, a := range l.appointments {
		if a.Equal(appt) {
			return i
		}
	}
	return -1
}

// Add appends an appointment. Uniqueness is the caller's responsibility.
func (l *AppointmentList) Add(appt Appointment) {
	l.appointments = append(l.appointments, appt)
}

// Remove deletes the first appointment equal to appt, shifting later
// entries down. No-op when absent.
func (l *AppointmentList) Remove(appt Appointment) {
	i := l.find(appt)
	if i < 0 {
		return
	}
	l.appointments = append(l.appointments[:i], l.appointments[i+1:]...)
}

// Contains reports whether an equal appointment exists.
func (l *AppointmentList) Contains(appt Appointment) bool {
	return l.find(appt) >= 0
}

// Size returns the number of stored appointments.
func (l *AppointmentList) Size() int {
	return len(l.appointments)
}

// Get returns the appointment at index i. The caller checks bounds
// against Size.
func (l *AppointmentList) Get(i int) Appointment {
	return l.appointments[i]
}

// SortByPatient orders by patient profile only. Ties keep their prior
// relative order.
func (l *AppointmentList) SortByPatient() {
	sort.SliceStable(l.appointments, func(i, j int) bool {
		return l.appointments[i].Patient.Compare(l.appointments[j].Patient) < 0
	})
}

// SortByLocation orders by provider county (case-sensitive), then date,
// then timeslot.
func (l *AppointmentList) SortByLocation() {
	sort.SliceStable(l.appointments, func(i, j int) bool {
		a, b := l.appointments[i], l.appointments[j]
		if a.Provider.Location.County != b.Provider.Location.County {
			return a.Provider.Location.County < b.Provider.Location.County
		}
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		return a.Timeslot.Compare(b.Timeslot) < 0
	})
}

// SortByAppointment orders by date, then timeslot, then provider name.
func (l *AppointmentList) SortByAppointment() {
	sort.SliceStable(l.appointments, func(i, j int) bool {
		a, b := l.appointments[i], l.appointments[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		if c := a.Timeslot.Compare(b.Timeslot); c != 0 {
			return c < 0
		}
		return a.Provider.Name < b.Provider.Name
	})
}
