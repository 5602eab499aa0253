package model

import (
	"testing"

	"siakadku_backend/internals/helpers/dbtime"
)

func tod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestOverlapsInclusiveBoundaries(t *testing.T) {
	slot := ScheduleSlotModel{
		ScheduleSlotsStartTime: tod(t, "07:00"),
		ScheduleSlotsEndTime:   tod(t, "08:00"),
	}

	cases := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"identik", "07:00", "08:00", true},
		{"di dalam", "07:15", "07:45", true},
		{"membungkus", "06:30", "08:30", true},
		{"tumpang kiri", "06:30", "07:30", true},
		{"tumpang kanan", "07:30", "08:30", true},
		{"bersentuhan di ujung akhir", "08:00", "09:00", true},
		{"bersentuhan di ujung awal", "06:00", "07:00", true},
		{"lepas sesudah", "08:01", "09:00", false},
		{"lepas sebelum", "06:00", "06:59", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slot.Overlaps(tod(t, tc.start), tod(t, tc.end))
			if got != tc.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}
