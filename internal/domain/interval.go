package domain

import "time"

// BlockDuration is how long a booking reserves its artist. It is kept just
// under two hours; do not round it up without product sign-off.
const BlockDuration = 119 * time.Minute

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func BlockAt(d Date, t TimeOfDay) Interval {
	start := Combine(d, t)
	return Interval{Start: start, End: start.Add(BlockDuration)}
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching intervals (one ends where the other starts) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}

// FirstConflict returns the first appointment whose blocked interval overlaps
// candidate. Only appointments on the candidate's own date are considered.
func FirstConflict(candidate Interval, date Date, existing []Appointment) (Appointment, bool) {
	for _, a := range existing {
		if a.Date != date {
			continue
		}
		if candidate.Overlaps(a.Block()) {
			return a, true
		}
	}
	return Appointment{}, false
}

// WithinAvailability reports whether candidate fits entirely inside one of the
// declared windows on date.
func WithinAvailability(candidate Interval, date Date, windows []Availability) bool {
	for _, w := range windows {
		if w.Date != date {
			continue
		}
		if w.Window().Contains(candidate) {
			return true
		}
	}
	return false
}

// FreeStarts lists start times in [open, lastStart] on date, stepping by step,
// whose block does not overlap busy. When windows is non-nil the block must
// also fit inside one of them.
func FreeStarts(date Date, open, lastStart TimeOfDay, step time.Duration, busy []Appointment, windows []Availability) []TimeOfDay {
	if step <= 0 || lastStart.Before(open) {
		return nil
	}
	stepMinutes := int(step / time.Minute)
	if stepMinutes <= 0 {
		return nil
	}

	var out []TimeOfDay
	for m := open.Minutes(); m <= lastStart.Minutes(); m += stepMinutes {
		t := TimeOfDay{Hour: m / 60, Minute: m % 60}
		block := BlockAt(date, t)
		if _, conflict := FirstConflict(block, date, busy); conflict {
			continue
		}
		if windows != nil && !WithinAvailability(block, date, windows) {
			continue
		}
		out = append(out, t)
	}
	return out
}
