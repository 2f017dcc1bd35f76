package forms

import (
	"strconv"
	"strings"
	"time"
)

// ChildAnnexAgeLimit is the age from which a child files the additional
// persons annex instead of the child annex.
const ChildAnnexAgeLimit = 15

// parseBirthDate parses D.M.YYYY with optional zero padding.
// Returns zero time and false on invalid input.
func parseBirthDate(s string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	d, errD := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	y, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 || y < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		// 31.02. and friends roll over into the next month
		return time.Time{}, false
	}
	return t, true
}

// AgeAt returns the completed years between birthDate and ref. Unparseable
// birth dates count as age 0.
func AgeAt(birthDate string, ref time.Time) int {
	birth, ok := parseBirthDate(birthDate)
	if !ok {
		return 0
	}
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}
