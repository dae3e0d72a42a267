package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCourseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3 week", "3 weeks"},
		{"1 month", "1 month"},
		{"1 months", "1 month"},
		{"12 Hours", "12 hours"},
		{"2day", "2 days"},
		{" 4 weeks ", "4 weeks"},
		{"Self-paced", "Self-paced"},
		{"1.5 hours", "1.5 hours"},
		{"3 years", "3 years"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCourseDuration(tt.in))
		})
	}
}

func TestHours(t *testing.T) {
	h, ok := Hours("2 days")
	assert.True(t, ok)
	assert.Equal(t, 48.0, h)

	h, ok = Hours("1 week")
	assert.True(t, ok)
	assert.Equal(t, 168.0, h)

	_, ok = Hours("forever")
	assert.False(t, ok)
}
