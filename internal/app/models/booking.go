package models

import (
	"sort"
	"time"
	"tutorbook-service/internal/pkg/constvars"
)

// Booking mirrors the lesson API wire shape. Date, StartTime and EndTime are
// UTC; Date is the UTC calendar date of the start instant. An EndTime at or
// before StartTime means the lesson crosses midnight UTC and ends on the
// following calendar day.
type Booking struct {
	ID        int         `json:"id"`
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	User      BookingUser `json:"user"`
	Tutor     Tutor       `json:"tutor"`
}

type BookingUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type Tutor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// BookingState is derived from the current instant at classification time,
// never stored.
type BookingState int

const (
	BookingOngoing BookingState = iota
	BookingUpcoming
	BookingPast
)

func (s BookingState) String() string {
	switch s {
	case BookingOngoing:
		return "In Progress"
	case BookingUpcoming:
		return "Upcoming"
	default:
		return "Past"
	}
}

// StartInstant returns the absolute UTC start of the lesson. Malformed wire
// data yields the zero time, which classifies as Past.
func (b Booking) StartInstant() time.Time {
	start, err := time.ParseInLocation(constvars.DateLayout+" "+constvars.TimeLayout, b.Date+" "+b.StartTime, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return start
}

// EndInstant returns the absolute UTC end of the lesson, rolling over to the
// next calendar day when the end time-of-day does not follow the start.
func (b Booking) EndInstant() time.Time {
	end, err := time.ParseInLocation(constvars.DateLayout+" "+constvars.TimeLayout, b.Date+" "+b.EndTime, time.UTC)
	if err != nil {
		return time.Time{}
	}
	if !end.After(b.StartInstant()) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// Classify places the booking into exactly one state relative to now. Both
// boundaries are inclusive on the Ongoing side: a lesson starting or ending
// at this very instant is in progress.
func (b Booking) Classify(now time.Time) BookingState {
	start := b.StartInstant()
	end := b.EndInstant()
	switch {
	case now.Before(start):
		return BookingUpcoming
	case now.After(end):
		return BookingPast
	default:
		return BookingOngoing
	}
}

// CanDelete reports whether the booking may still be cancelled. Past lessons
// are immutable.
func (b Booking) CanDelete(now time.Time) bool {
	return b.Classify(now) != BookingPast
}

// SortForDisplay orders bookings for the dashboard: ongoing lessons first
// (soonest to finish at the top), then upcoming (soonest to start), then past
// (most recently started). The sort is stable, so equal keys keep their
// original relative order, and the result has the same length as the input.
func SortForDisplay(bookings []Booking, now time.Time) []Booking {
	var ongoing, upcoming, past []Booking
	for _, b := range bookings {
		switch b.Classify(now) {
		case BookingOngoing:
			ongoing = append(ongoing, b)
		case BookingUpcoming:
			upcoming = append(upcoming, b)
		default:
			past = append(past, b)
		}
	}

	sort.SliceStable(ongoing, func(i, j int) bool {
		return ongoing[i].EndInstant().Before(ongoing[j].EndInstant())
	})
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartInstant().Before(upcoming[j].StartInstant())
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartInstant().After(past[j].StartInstant())
	})

	sorted := make([]Booking, 0, len(bookings))
	sorted = append(sorted, ongoing...)
	sorted = append(sorted, upcoming...)
	sorted = append(sorted, past...)
	return sorted
}

// TutorsFromBookings reconstructs the distinct tutor set referenced by a
// booking collection, deduplicated by tutor id in first-seen order. Used as
// the fallback when the dedicated tutor listing is unavailable.
func TutorsFromBookings(bookings []Booking) []Tutor {
	seen := make(map[int]bool, len(bookings))
	var tutors []Tutor
	for _, b := range bookings {
		if seen[b.Tutor.ID] {
			continue
		}
		seen[b.Tutor.ID] = true
		tutors = append(tutors, b.Tutor)
	}
	return tutors
}
