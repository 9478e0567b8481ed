package osc

import (
	"bytes"
	"time"
)

const (
	// secondsFrom1900To1970 is the offset between the OSC (NTP) epoch and
	// the Unix epoch.
	secondsFrom1900To1970 = 2208988800

	// immediately is the special time tag value of 63 zero bits followed by
	// a one, meaning "process immediately".
	immediately = Timetag(1)
)

// Timetag represents an OSC time tag: a 64-bit fixed point number whose
// first 32 bits count seconds since midnight on January 1, 1900 and whose
// last 32 bits are the fractional part of a second. This is the
// representation used by Internet NTP timestamps.
//
// A Timetag is both the timestamp of a Bundle and a 't' message argument.
type Timetag uint64

// NewTimetag returns a time tag for the current time.
func NewTimetag() Timetag {
	return NewTimetagFromTime(time.Now())
}

// NewImmediateTimetag returns the special "immediately" time tag.
func NewImmediateTimetag() Timetag {
	return immediately
}

// NewTimetagFromTime returns a new OSC time tag from a time.Time.
func NewTimetagFromTime(timeStamp time.Time) Timetag {
	return timeToTimetag(timeStamp)
}

// Time returns the time.
func (t Timetag) Time() time.Time {
	return timetagToTime(t)
}

// FractionalSecond returns the last 32 bits of the OSC time tag, the
// fractional part of a second.
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t)
}

// SecondsSinceEpoch returns the first 32 bits of the OSC time tag, the
// number of seconds since midnight 1900.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// SetTime sets the value of the OSC time tag.
func (t *Timetag) SetTime(time time.Time) {
	*t = timeToTimetag(time)
}

// ExpiresIn calculates the duration until the current time matches the value
// of the time tag. It returns zero if the time tag is immediate or in the
// past.
func (t Timetag) ExpiresIn() time.Duration {
	if t <= immediately {
		return 0
	}

	d := timetagToTime(t).Sub(time.Now())
	if d <= 0 {
		return 0
	}

	return d
}

func (Timetag) Tag() TypeTag { return TypeTimetag }

func (t Timetag) appendTag(tags []byte) []byte { return append(tags, byte(TypeTimetag)) }

func (t Timetag) writePayload(b *bytes.Buffer) { writeBE64(uint64(t), b) }

// timeToTimetag converts the given time to an OSC time tag.
func timeToTimetag(t time.Time) Timetag {
	timetag := uint64(secondsFrom1900To1970+t.Unix()) << 32
	return Timetag(timetag + uint64(t.Nanosecond()))
}

// timetagToTime converts the given time tag to a time object.
func timetagToTime(timetag Timetag) time.Time {
	return time.Unix(int64((timetag>>32)-secondsFrom1900To1970), int64(timetag&0xffffffff))
}
