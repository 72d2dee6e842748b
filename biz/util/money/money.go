// Package money keeps amounts as integer minor units so balances never pick
// up floating point drift.
package money

import (
	"errors"
	"strconv"
	"strings"
)

// Cents is an amount in minor units (1/100).
type Cents int64

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// maxWhole keeps whole*100+frac inside int64.
const maxWhole = (1<<63 - 1) / 100

// ParseAmount parses a plain decimal such as "40", "40.5" or "40.50".
// Signs, exponents, NaN/Inf and more than two decimals are rejected, as is
// anything not strictly positive.
func ParseAmount(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	if !digitsOnly(whole) || (hasDot && (frac == "" || !digitsOnly(frac))) || len(frac) > 2 {
		return 0, ErrInvalidAmount
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w > maxWhole {
		return 0, ErrInvalidAmount
	}

	var f int64
	if frac != "" {
		for len(frac) < 2 {
			frac += "0"
		}
		f, _ = strconv.ParseInt(frac, 10, 64)
	}

	c := Cents(w*100 + f)
	if c <= 0 {
		return 0, ErrNonPositiveAmount
	}
	return c, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	frac := strconv.FormatInt(v%100, 10)
	if len(frac) == 1 {
		frac = "0" + frac
	}
	return sign + strconv.FormatInt(v/100, 10) + "." + frac
}
