package webvtt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var timestampRegex = regexp.MustCompile(
	`^(?:(\d{1,2}):)?([0-5]\d):([0-5]\d)\.(\d{3})$`,
)

// immutable millisecond-resolution time value
type Timestamp struct {
	millis int64
}

func NewTimestamp(millis int64) Timestamp {
	return Timestamp{millis: millis}
}

// parses (HH:)MM:SS.mmm; the hour field may have one or two digits
func ParseTimestamp(text string) (Timestamp, error) {
	matches := timestampRegex.FindStringSubmatch(text)
	if matches == nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, text)
	}

	var hours int64
	if matches[1] != "" {
		hours, _ = strconv.ParseInt(matches[1], 10, 64)
	}
	minutes, _ := strconv.ParseInt(matches[2], 10, 64)
	seconds, _ := strconv.ParseInt(matches[3], 10, 64)
	millis, _ := strconv.ParseInt(matches[4], 10, 64)

	return Timestamp{
		millis: millis +
			seconds*1000 +
			minutes*60*1000 +
			hours*60*60*1000,
	}, nil
}

// builds a Timestamp from an integer millisecond count, a time.Duration or
// a timestamp string
func TimestampFrom(v any) (Timestamp, error) {
	switch t := v.(type) {
	case Timestamp:
		return t, nil
	case time.Duration:
		return NewTimestamp(t.Milliseconds()), nil
	case int:
		return NewTimestamp(int64(t)), nil
	case int8:
		return NewTimestamp(int64(t)), nil
	case int16:
		return NewTimestamp(int64(t)), nil
	case int32:
		return NewTimestamp(int64(t)), nil
	case int64:
		return NewTimestamp(t), nil
	case uint:
		return fromUnsigned(uint64(t))
	case uint8:
		return NewTimestamp(int64(t)), nil
	case uint16:
		return NewTimestamp(int64(t)), nil
	case uint32:
		return NewTimestamp(int64(t)), nil
	case uint64:
		return fromUnsigned(t)
	case string:
		return ParseTimestamp(t)
	default:
		return Timestamp{}, fmt.Errorf(
			"%w: timestamp is neither an integer nor a string (%T)",
			ErrInvalidArgument,
			v,
		)
	}
}

func fromUnsigned(v uint64) (Timestamp, error) {
	if v > math.MaxInt64 {
		return Timestamp{}, fmt.Errorf("%w: %d milliseconds overflows a timestamp", ErrInvalidArgument, v)
	}
	return NewTimestamp(int64(v)), nil
}

// renders HH:MM:SS.mmm using floored division, so negative values come out
// as wrapped, not rejected
func (t Timestamp) String() string {
	totalSeconds := floorDiv(t.millis, 1000)

	hours := floorDiv(floorDiv(totalSeconds, 60), 60)
	minutes := floorMod(floorDiv(totalSeconds, 60), 60)
	seconds := floorMod(totalSeconds, 60)
	millis := floorMod(t.millis, 1000)

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func (t Timestamp) Milliseconds() int64 {
	return t.millis
}

// seconds rounded to 3 decimal places
func (t Timestamp) Seconds() float64 {
	return roundTo(float64(t.millis)/1000.0, 3)
}

func (t Timestamp) Duration() time.Duration {
	return time.Duration(t.millis) * time.Millisecond
}

// returns a new Timestamp shifted by deltaMillis
func (t Timestamp) Add(deltaMillis int64) Timestamp {
	return Timestamp{millis: t.millis + deltaMillis}
}

func (t Timestamp) Equal(other Timestamp) bool {
	return t.millis == other.millis
}

func (t Timestamp) Before(other Timestamp) bool {
	return t.millis < other.millis
}

// -1, 0 or +1
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.millis < other.millis:
		return -1
	case t.millis > other.millis:
		return 1
	default:
		return 0
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
