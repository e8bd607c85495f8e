package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
)

// H?:MM:SS followed by a comma or dot and exactly three digits
var timestampRegex = regexp.MustCompile(
	`^([0-9]+)?:([0-9][0-9]):([0-9][0-9])[,.]([0-9][0-9][0-9])$`,
)

// parseTimestamp decodes a single timestamp token into absolute
// milliseconds. lineno is only used to attribute the error.
func parseTimestamp(token string, lineno int) (int, error) {
	m := timestampRegex.FindStringSubmatch(token)
	if m == nil {
		return 0, fatalf(lineno, "Invalid timestamp line %d", lineno)
	}
	hours := 0
	if m[1] != "" {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fatalf(lineno, "Invalid timestamp line %d", lineno)
		}
		hours = h
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fatalf(lineno, "Invalid timestamp line %d", lineno)
	}
	seconds, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, fatalf(lineno, "Invalid timestamp line %d", lineno)
	}
	millis, err := strconv.Atoi(m[4])
	if err != nil {
		return 0, fatalf(lineno, "Invalid timestamp line %d", lineno)
	}
	return ((hours*60+minutes)*60+seconds)*1000 + millis, nil
}

// FormatTimestamp renders absolute milliseconds as HH:MM:SS?mmm with
// the given fractional separator (',' for SRT, '.' for WebVTT/HTML).
func FormatTimestamp(ms int, sep byte) string {
	hours := ms / 3600000
	minutes := ms % 3600000 / 60000
	seconds := ms % 60000 / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, seconds, sep, millis)
}
