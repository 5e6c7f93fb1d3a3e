package booking

import (
	"errors"
	"strings"
	"time"
)

// TimeSlot is a half-open interval [start, end); bookings ending at T and
// starting at T never overlap.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.After(end) || start.Equal(end) {
		return TimeSlot{}, errors.New("start time must be before end time")
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

type Participants struct {
	total    int
	internal int
	external int
}

func NewParticipants(total, internal, external int) (Participants, error) {
	if total <= 0 {
		return Participants{}, errors.New("total participants must be positive")
	}
	if internal < 0 || external < 0 {
		return Participants{}, errors.New("participant counts cannot be negative")
	}

	return Participants{
		total:    total,
		internal: internal,
		external: external,
	}, nil
}

func (p Participants) Total() int    { return p.total }
func (p Participants) Internal() int { return p.internal }
func (p Participants) External() int { return p.external }

// Attendees is the list of attendee email addresses, serialized as
// comma-delimited text in storage.
type Attendees []string

func NewAttendees(emails []string) Attendees {
	out := make(Attendees, 0, len(emails))
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

func ParseAttendees(serialized string) Attendees {
	if serialized == "" {
		return Attendees{}
	}
	return NewAttendees(strings.Split(serialized, ","))
}

func (a Attendees) Serialize() string {
	return strings.Join(a, ",")
}
