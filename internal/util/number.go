package util

import (
	"encoding/json"
	"fmt"
	"math"
)

// WholeNumber is an int that also decodes from integer-valued JSON numbers
// written with a fraction or exponent, such as 10.0 or 1e1. Strings and
// fractional values are rejected.
type WholeNumber int

func (n *WholeNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("%s is not a whole number", data)
	}
	*n = WholeNumber(f)
	return nil
}
