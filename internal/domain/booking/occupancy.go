package booking

import (
	"regexp"
	"strconv"
)

// Occupancy strings come from the service as "min-max persons", e.g.
// "2-8 personas". Only the numbers matter here.
var occupancyPattern = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)`)

// ParseOccupancy extracts the recommended min/max from an occupancy string.
// ok is false when the place declared no parseable range; such places never
// flag capacity.
func ParseOccupancy(s string) (min, max int, ok bool) {
	m := occupancyPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	min, _ = strconv.Atoi(m[1])
	max, _ = strconv.Atoi(m[2])
	if max < min {
		return 0, 0, false
	}
	return min, max, true
}
