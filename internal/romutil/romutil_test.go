package romutil

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRoundUpMultiple(t *testing.T) {
	tests := []struct {
		val, divisor, want int
	}{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
		{0x1004, 16, 0x1010},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundUpMultiple(tt.val, tt.divisor))
	}
}

func TestRoundDownMultiple(t *testing.T) {
	tests := []struct {
		val, divisor, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 16},
		{0x1004, 16, 0x1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundDownMultiple(tt.val, tt.divisor))
	}
}
