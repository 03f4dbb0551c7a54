package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errMissingQuantity = errors.New("missing value")

// ParseQuantity parses a raw yield or demand value as stored in the dataset.
// Missing, non-numeric, non-finite and negative values are rejected; callers
// classify them as zero.
func ParseQuantity(raw sql.NullString) (float64, error) {
	if !raw.Valid {
		return 0, errMissingQuantity
	}
	s := strings.TrimSpace(raw.String)
	if s == "" {
		return 0, errMissingQuantity
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value: %v", v)
	}
	return v, nil
}
