package pricing

import (
	"testing"

	errs "practice-pricing/internal/errors"
)

func TestParseTurnoverBand(t *testing.T) {
	tests := []struct {
		input string
		min   int64
		max   int64 // -1 means unbounded
	}{
		{"0-89k", 0, 89000},
		{"90k-149k", 90000, 149000},
		{"150k-249k", 150000, 249000},
		{"250k-499k", 250000, 499000},
		{"750k-999k", 750000, 999000},
		{"1m+", 1000000, -1},
		{"2m+", 2000000, -1},
		{"500-900", 500, 900},
		{"1m-2m", 1000000, 2000000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			band, err := ParseTurnoverBand(tt.input)
			if err != nil {
				t.Fatalf("ParseTurnoverBand(%q) returned error: %v", tt.input, err)
			}
			if band.Min != tt.min {
				t.Errorf("min = %d, want %d", band.Min, tt.min)
			}
			if tt.max == -1 {
				if band.Max != nil {
					t.Errorf("max = %d, want unbounded", *band.Max)
				}
			} else {
				if band.Max == nil {
					t.Fatalf("max is unbounded, want %d", tt.max)
				}
				if *band.Max != tt.max {
					t.Errorf("max = %d, want %d", *band.Max, tt.max)
				}
			}
		})
	}
}

func TestParseTurnoverBandInvalid(t *testing.T) {
	inputs := []string{"", "abc", "90k", "90k-", "-149k", "k-m", "90x-100x", "+"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTurnoverBand(input)
			if err == nil {
				t.Fatalf("ParseTurnoverBand(%q) succeeded, want error", input)
			}
			if !errs.IsType(err, errs.TypeInvalidTurnover) {
				t.Errorf("error type = %v, want INVALID_TURNOVER", err)
			}
		})
	}
}
