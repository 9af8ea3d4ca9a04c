package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"agrilink/internal/pkg/errs"
)

// platformFeeRatePercent is the platform's fixed cut of the agreed unit price.
const platformFeeRatePercent = 5

// Money is a two-decimal currency value object stored as an integer number of
// kobo (hundredths). Storing minor units keeps arithmetic exact; the 5%
// platform fee in particular must never drift under floating-point rounding.
//
// The zero value represents 0.00 and is valid as an amount (e.g. transport
// cost), but constructors reject negative values. Money is immutable.
//
// Example:
//
//	price, err := kernel.ParseMoney("120.00")
//	if err != nil {
//	    return err
//	}
//	fee := price.PlatformFee() // 6.00
type Money struct {
	minorUnits int64
}

// NewMoneyFromMinorUnits creates a Money from a count of hundredths.
// Returns an error for negative amounts.
func NewMoneyFromMinorUnits(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", minorUnits),
		)
	}
	return Money{minorUnits: minorUnits}, nil
}

// ParseMoney parses a decimal string such as "120.00", "8500" or "6.5"
// into a Money value. At most two fractional digits are accepted.
func ParseMoney(s string) (Money, error) {
	whole, frac, hasFrac := strings.Cut(strings.TrimSpace(s), ".")
	if whole == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	if units < 0 || strings.HasPrefix(whole, "-") {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", s),
		)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause(
				"amount is invalid",
				fmt.Errorf("%q has an unsupported fractional part", s),
			)
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	return Money{minorUnits: units*100 + cents}, nil
}

// MinorUnits returns the amount as a count of hundredths.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.minorUnits == 0
}

// IsPositive reports whether the amount is strictly greater than 0.00.
func (m Money) IsPositive() bool {
	return m.minorUnits > 0
}

// Compare orders two amounts: -1 if m < other, 0 if equal, 1 if m > other.
func (m Money) Compare(other Money) int {
	switch {
	case m.minorUnits < other.minorUnits:
		return -1
	case m.minorUnits > other.minorUnits:
		return 1
	default:
		return 0
	}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.minorUnits == other.minorUnits
}

// PlatformFee derives the platform's 5% cut of the amount, rounded half up to
// the nearest hundredth. The result is computed from the snapshot amount only;
// callers store it once at order creation and never recompute it.
func (m Money) PlatformFee() Money {
	fee := (m.minorUnits*platformFeeRatePercent + 50) / 100
	return Money{minorUnits: fee}
}

// String formats the amount with exactly two decimal places, e.g. "120.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minorUnits/100, m.minorUnits%100)
}
