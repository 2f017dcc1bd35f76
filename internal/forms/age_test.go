package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	on := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		birth string
		want  int
	}{
		{"15.03.2011", 15},
		{"16.03.2011", 14},
		{"1.1.2000", 26},
		{"29.02.2012", 14},
		{" 14.03.2011 ", 15},
		{"", 0},
		{"2011-03-15", 0},
		{"15.13.2011", 0},
		{"30.02.2011", 0},
		{"aa.bb.cccc", 0},
		{"15.03", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeAt(tt.birth, on), tt.birth)
	}
}
