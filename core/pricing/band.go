// Package pricing - Turnover band parsing
package pricing

import (
	"strconv"
	"strings"

	errs "practice-pricing/internal/errors"
)

// TurnoverBand is a parsed revenue range.
// Max is nil for open-ended bands like "1m+".
type TurnoverBand struct {
	Min int64
	Max *int64
}

// ParseTurnoverBand parses band strings such as "0-89k", "90k-149k" and
// "1m+". A "k" suffix scales by one thousand, "m" by one million.
func ParseTurnoverBand(s string) (TurnoverBand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TurnoverBand{}, errs.InvalidTurnover(s)
	}

	if strings.HasSuffix(s, "+") {
		min, err := parseBandValue(strings.TrimSuffix(s, "+"))
		if err != nil {
			return TurnoverBand{}, errs.InvalidTurnover(s)
		}
		return TurnoverBand{Min: min}, nil
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return TurnoverBand{}, errs.InvalidTurnover(s)
	}

	min, err := parseBandValue(parts[0])
	if err != nil {
		return TurnoverBand{}, errs.InvalidTurnover(s)
	}
	max, err := parseBandValue(parts[1])
	if err != nil {
		return TurnoverBand{}, errs.InvalidTurnover(s)
	}

	return TurnoverBand{Min: min, Max: &max}, nil
}

func parseBandValue(v string) (int64, error) {
	scale := int64(1)
	switch {
	case strings.HasSuffix(v, "k"):
		scale = 1_000
		v = strings.TrimSuffix(v, "k")
	case strings.HasSuffix(v, "m"):
		scale = 1_000_000
		v = strings.TrimSuffix(v, "m")
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, err
	}
	return n * scale, nil
}
