package ibge

import (
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// ParsePeriod extracts the starting year of a census period string.
// The API writes periods as "1930[", "2000[", or "[1940,1950[".
// Returns 0 when no 4-digit year is present.
func ParsePeriod(period string) int {
	match := yearPattern.FindString(period)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}
