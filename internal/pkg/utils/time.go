package utils

import (
	"strconv"
	"time"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/exceptions"
)

// UTCWindow is a lesson time window normalized for submission to the lesson
// API. Date is the UTC calendar date of the start instant; EndTime is a
// time-of-day belonging to the same logical session even when the session
// crosses midnight UTC (EndTime <= StartTime means the end instant falls on
// the following calendar day).
type UTCWindow struct {
	Date      string
	StartTime string
	EndTime   string
}

// ToUTCWindow converts a wall-clock date and start time, interpreted at the
// given UTC offset (minutes east of UTC), plus a duration in minutes, into a
// UTC-normalized window. Pure: no wall-clock or environment reads.
func ToUTCWindow(localDate, localStartTime string, durationMinutes, offsetMinutes int) (UTCWindow, error) {
	if !IsAllowedDuration(durationMinutes) {
		return UTCWindow{}, exceptions.ErrInvalidDuration(nil)
	}

	zone := time.FixedZone("client", offsetMinutes*60)
	start, err := time.ParseInLocation(constvars.DateLayout+" "+constvars.TimeLayout, localDate+" "+localStartTime, zone)
	if err != nil {
		return UTCWindow{}, exceptions.ErrCannotParseTime(err)
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	startUTC := start.UTC()
	endUTC := end.UTC()

	return UTCWindow{
		Date:      startUTC.Format(constvars.DateLayout),
		StartTime: startUTC.Format(constvars.TimeLayout),
		EndTime:   endUTC.Format(constvars.TimeLayout),
	}, nil
}

// ToLocalDisplay combines a stored UTC date and time-of-day into an absolute
// instant and formats it at the given UTC offset for display. Stored data is
// never mutated.
func ToLocalDisplay(utcDate, utcTime string, offsetMinutes int) (string, error) {
	instant, err := time.ParseInLocation(constvars.DateLayout+" "+constvars.TimeLayout, utcDate+" "+utcTime, time.UTC)
	if err != nil {
		return "", exceptions.ErrCannotParseTime(err)
	}

	return FormatLocalTime(instant, offsetMinutes), nil
}

// FormatLocalTime renders an absolute instant as a 12-hour clock reading at
// the given UTC offset.
func FormatLocalTime(instant time.Time, offsetMinutes int) string {
	zone := time.FixedZone("client", offsetMinutes*60)
	return instant.In(zone).Format("03:04 PM")
}

// FormatLocalDate renders the calendar day of an absolute instant at the
// given UTC offset.
func FormatLocalDate(instant time.Time, offsetMinutes int) string {
	zone := time.FixedZone("client", offsetMinutes*60)
	return instant.In(zone).Format("Monday, January 2, 2006")
}

// ToLocalDateDisplay renders the stored UTC date as a long-form date at the
// given UTC offset, anchored to the start time so the viewer sees the
// calendar day the lesson starts on in their own timezone.
func ToLocalDateDisplay(utcDate, utcStartTime string, offsetMinutes int) (string, error) {
	instant, err := time.ParseInLocation(constvars.DateLayout+" "+constvars.TimeLayout, utcDate+" "+utcStartTime, time.UTC)
	if err != nil {
		return "", exceptions.ErrCannotParseDate(err)
	}

	return FormatLocalDate(instant, offsetMinutes), nil
}

// IsAllowedDuration reports whether the duration is one of the bookable
// lesson lengths.
func IsAllowedDuration(durationMinutes int) bool {
	for _, allowed := range constvars.AllowedLessonDurations {
		if durationMinutes == allowed {
			return true
		}
	}
	return false
}

// ParseTimezoneOffset parses a client-supplied UTC offset in minutes east of
// UTC. Empty or malformed values fall back to UTC.
func ParseTimezoneOffset(raw string) int {
	if raw == "" {
		return 0
	}
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	// Clamp to the real-world offset range (UTC-12 .. UTC+14).
	if offset < -12*60 || offset > 14*60 {
		return 0
	}
	return offset
}
