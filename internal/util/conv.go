package util

import (
	"strconv"
)

// ParsePositiveInt returns def when s is empty, malformed or not positive.
func ParsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
