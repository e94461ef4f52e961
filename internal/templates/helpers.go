package templates

import (
	"strconv"
	"time"
)

// itoa converts an int64 to a string, used for building URL paths.
func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// millis converts a duration to whole milliseconds for htmx trigger delays.
// It never returns less than 1 so "delay:0ms" is not emitted.
func millis(d time.Duration) int64 {
	if ms := d.Milliseconds(); ms > 0 {
		return ms
	}
	return 1
}
