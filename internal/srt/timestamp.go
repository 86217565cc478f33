package srt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a cue boundary measured from the start of the media.
type Timestamp time.Duration

// Duration returns the timestamp as a time.Duration.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t)
}

// String renders the timestamp as HH:MM:SS,mmm.
func (t Timestamp) String() string {
	d := time.Duration(t)
	if d < 0 {
		d = 0
	}
	h := int64(d / time.Hour)
	d -= time.Duration(h) * time.Hour
	m := int64(d / time.Minute)
	d -= time.Duration(m) * time.Minute
	s := int64(d / time.Second)
	d -= time.Duration(s) * time.Second
	ms := int64(d / time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// ParseTimestamp parses an SRT timestamp. Both comma and period are accepted
// as the millisecond separator; fractions shorter than three digits are scaled.
func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	normalized := strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(normalized, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := parseUnsigned(hms[0])
	minutes, errM := parseUnsigned(hms[1])
	seconds, errS := parseUnsigned(hms[2])
	millis, errMS := parseMillis(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("invalid timestamp %q: minutes and seconds must be below 60", value)
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
	return Timestamp(total), nil
}

func parseUnsigned(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "-") || strings.HasPrefix(value, "+") {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return strconv.Atoi(value)
}

func parseMillis(value string) (int, error) {
	value = strings.TrimSpace(value)
	if len(value) > 3 {
		value = value[:3]
	}
	n, err := parseUnsigned(value)
	if err != nil {
		return 0, err
	}
	switch len(value) {
	case 1:
		n *= 100
	case 2:
		n *= 10
	}
	return n, nil
}
