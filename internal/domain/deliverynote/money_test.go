package deliverynote

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCentsForInput(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{0, ""},
		{1, "0,01"},
		{50, "0,50"},
		{150, "1,50"},
		{1234, "12,34"},
		{100000, "1000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCentsForInput(tt.cents))
		})
	}
}

func TestFormatCentsForDisplay(t *testing.T) {
	assert.Equal(t, "—", FormatCentsForDisplay(0))
	assert.Equal(t, "2,50 €", FormatCentsForDisplay(250))
	assert.Equal(t, "0,01 €", FormatCentsForDisplay(1))
	assert.Equal(t, "12,34 €", FormatCentsForDisplay(1234))
}

func TestParseCentsFromInput(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"", 0},
		{"  ", 0},
		{"abc", 0},
		{"1,50", 150},
		{"1.50", 150},
		{"12,34", 1234},
		{"0,01", 1},
		{"2", 200},
		{"2,5", 250},
		{" 3,00 ", 300},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCentsFromInput(tt.input))
		})
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	// Parsing the input rendition yields the original cents for every
	// non-zero amount; zero maps to the empty string and back.
	for _, cents := range []int64{1, 2, 99, 100, 150, 1234, 99999, 123456789} {
		t.Run(fmt.Sprintf("%d", cents), func(t *testing.T) {
			assert.Equal(t, cents, ParseCentsFromInput(FormatCentsForInput(cents)))
		})
	}
	assert.Equal(t, int64(0), ParseCentsFromInput(FormatCentsForInput(0)))
}
