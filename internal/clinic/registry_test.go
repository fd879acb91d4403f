package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySizes(t *testing.T) {
	assert.Len(t, Locations(), 6)
	assert.Len(t, Specialties(), 3)
	assert.Len(t, Providers(), 8)
	assert.Len(t, Timeslots(), 6)
}

func TestFindProvider(t *testing.T) {
	tests := []struct {
		input     string
		wantOK    bool
		city      string
		county    string
		zip       string
		specialty string
	}{
		{"PATEL", true, "BRIDGEWATER", "Somerset", "08807", "FAMILY"},
		{"patel", true, "BRIDGEWATER", "Somerset", "08807", "FAMILY"},
		{"Patel", true, "BRIDGEWATER", "Somerset", "08807", "FAMILY"},
		{"LIM", true, "BRIDGEWATER", "Somerset", "08807", "PEDIATRICIAN"},
		{"kaur", true, "PRINCETON", "Mercer", "08542", "ALLERGIST"},
		{"ceravolo", true, "EDISON", "Middlesex", "08817", "PEDIATRICIAN"},
		{"SMITH", false, "", "", "", ""},
		{"", false, "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := FindProvider(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.city, p.Location.City)
				assert.Equal(t, tt.county, p.Location.County)
				assert.Equal(t, tt.zip, p.Location.Zip)
				assert.Equal(t, tt.specialty, p.Specialty.Name)
			}
		})
	}
}

func TestSpecialtyCharges(t *testing.T) {
	want := map[string]int{"FAMILY": 250, "PEDIATRICIAN": 300, "ALLERGIST": 350}
	for _, sp := range Specialties() {
		assert.Equal(t, want[sp.Name], sp.Charge, sp.Name)
	}
}

func TestFindTimeslot(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
		hour   int
		minute int
	}{
		{"1", true, 9, 0},
		{"2", true, 10, 45},
		{"3", true, 11, 15},
		{"4", true, 13, 30},
		{"5", true, 15, 0},
		{"6", true, 16, 15},
		{" 4 ", true, 13, 30},
		{"0", false, 0, 0},
		{"7", false, 0, 0},
		{"x", false, 0, 0},
		{"", false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			slot, ok := FindTimeslot(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.hour, slot.Hour)
				assert.Equal(t, tt.minute, slot.Minute)
			}
		})
	}
}

func TestTimeslotStrings(t *testing.T) {
	one, ok := FindTimeslot("1")
	require.True(t, ok)
	assert.Equal(t, "09:00", one.String())
	assert.Equal(t, "9:00 AM", one.Clock12())

	four, ok := FindTimeslot("4")
	require.True(t, ok)
	assert.Equal(t, "13:30", four.String())
	assert.Equal(t, "1:30 PM", four.Clock12())

	six, ok := FindTimeslot("6")
	require.True(t, ok)
	assert.Equal(t, "4:15 PM", six.Clock12())
}

func TestProviderString(t *testing.T) {
	p, ok := FindProvider("PATEL")
	require.True(t, ok)
	assert.Equal(t, "PATEL, BRIDGEWATER, Somerset 08807, FAMILY", p.String())
}
