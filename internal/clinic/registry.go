package clinic

import (
	"fmt"
	"strconv"
	"strings"
)

// The clinic's locations, specialties, providers and timeslots are fixed
// tables loaded at process start. The rest of the system treats them as
// read-only lookup services.

// Location is one of the clinic's six sites.
type Location struct {
	City   string
	County string
	Zip    string
}

// String renders "CITY, County Zip".
func (l Location) String() string {
	return fmt.Sprintf("%s, %s %s", l.City, l.County, l.Zip)
}

// Specialty carries the fixed per-visit charge billed for it.
type Specialty struct {
	Name   string
	Charge int
}

func (s Specialty) String() string { return s.Name }

// Provider is a clinician bound to one location and one specialty.
type Provider struct {
	Name      string
	Location  Location
	Specialty Specialty
}

// String renders "NAME, CITY, County Zip, SPECIALTY".
func (p Provider) String() string {
	return fmt.Sprintf("%s, %s, %s", p.Name, p.Location, p.Specialty)
}

// Timeslot is one of the six fixed appointment start times, addressed on
// the command line by its numeric code.
type Timeslot struct {
	Code   int
	Hour   int
	Minute int
}

// Compare orders timeslots by their position in the day.
func (t Timeslot) Compare(other Timeslot) int {
	return t.Code - other.Code
}

// String renders the 24-hour HH:MM form.
func (t Timeslot) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Clock12 renders the 12-hour H:MM AM/PM form used in printed appointments.
func (t Timeslot) Clock12() string {
	hour := t.Hour
	amPm := "AM"
	if hour >= 12 {
		amPm = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, amPm)
}

var (
	locBridgewater = Location{City: "BRIDGEWATER", County: "Somerset", Zip: "08807"}
	locEdison      = Location{City: "EDISON", County: "Middlesex", Zip: "08817"}
	locPiscataway  = Location{City: "PISCATAWAY", County: "Middlesex", Zip: "08854"}
	locPrinceton   = Location{City: "PRINCETON", County: "Mercer", Zip: "08542"}
	locMorristown  = Location{City: "MORRISTOWN", County: "Morris", Zip: "07960"}
	locClark       = Location{City: "CLARK", County: "Union", Zip: "07066"}

	specFamily       = Specialty{Name: "FAMILY", Charge: 250}
	specPediatrician = Specialty{Name: "PEDIATRICIAN", Charge: 300}
	specAllergist    = Specialty{Name: "ALLERGIST", Charge: 350}
)

var locations = []Location{
	locBridgewater, locEdison, locPiscataway, locPrinceton, locMorristown, locClark,
}

var specialties = []Specialty{specFamily, specPediatrician, specAllergist}

var providers = []Provider{
	{Name: "PATEL", Location: locBridgewater, Specialty: specFamily},
	{Name: "LIM", Location: locBridgewater, Specialty: specPediatrician},
	{Name: "ZIMNES", Location: locClark, Specialty: specFamily},
	{Name: "HARPER", Location: locClark, Specialty: specFamily},
	{Name: "KAUR", Location: locPrinceton, Specialty: specAllergist},
	{Name: "TAYLOR", Location: locPiscataway, Specialty: specPediatrician},
	{Name: "RAMESH", Location: locMorristown, Specialty: specAllergist},
	{Name: "CERAVOLO", Location: locEdison, Specialty: specPediatrician},
}

var timeslots = []Timeslot{
	{Code: 1, Hour: 9, Minute: 0},
	{Code: 2, Hour: 10, Minute: 45},
	{Code: 3, Hour: 11, Minute: 15},
	{Code: 4, Hour: 13, Minute: 30},
	{Code: 5, Hour: 15, Minute: 0},
	{Code: 6, Hour: 16, Minute: 15},
}

// Locations returns all clinic locations.
func Locations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}

// Specialties returns all specialties.
func Specialties() []Specialty {
	out := make([]Specialty, len(specialties))
	copy(out, specialties)
	return out
}

// Providers returns all providers.
func Providers() []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	return out
}

// Timeslots returns all timeslots in code order.
func Timeslots() []Timeslot {
	out := make([]Timeslot, len(timeslots))
	copy(out, timeslots)
	return out
}

// FindProvider looks a provider up by last name, case-insensitively.
func FindProvider(lastName string) (Provider, bool) {
	for _, p := range providers {
		if strings.EqualFold(p.Name, lastName) {
			return p, true
		}
	}
	return Provider{}, false
}

// FindTimeslot resolves a numeric timeslot code ("1" through "6").
func FindTimeslot(code string) (Timeslot, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return Timeslot{}, false
	}
	for _, t := range timeslots {
		if t.Code == n {
			return t, true
		}
	}
	return Timeslot{}, false
}
