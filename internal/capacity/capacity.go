// Package capacity converts human-readable byte quantities such as "1500G" or
// "1.5KiB" into exact byte counts, and back.
//
// Decimal prefixes (K, M, G, T, P, E) are powers of 1000. Binary prefixes carry
// the "i" marker (Ki, Mi, Gi, Ti, Pi, Ei) and are powers of 1024. Units are
// case-insensitive and may end with an optional "B".
package capacity

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"diskfarm/internal/shared"
)

// magnitude with an optional fraction, immediately followed by the unit
var sizePattern = regexp.MustCompile(`^(\d+)(?:\.(\d+))?([A-Za-z]*)$`)

type unit struct {
	suffix     string
	multiplier uint64
}

// units is ordered by descending multiplier. Format relies on that order.
var units = []unit{
	{"Ei", 1 << 60},
	{"E", 1e18},
	{"Pi", 1 << 50},
	{"P", 1e15},
	{"Ti", 1 << 40},
	{"T", 1e12},
	{"Gi", 1 << 30},
	{"G", 1e9},
	{"Mi", 1 << 20},
	{"M", 1e6},
	{"Ki", 1 << 10},
	{"K", 1e3},
	{"B", 1},
}

// suffixes maps every accepted lower-case unit spelling to its multiplier.
var suffixes = buildSuffixes()

func buildSuffixes() map[string]uint64 {
	m := map[string]uint64{"": 1}
	for _, u := range units {
		s := strings.ToLower(u.suffix)
		m[s] = u.multiplier
		if s != "b" {
			m[s+"b"] = u.multiplier
		}
	}
	return m
}

// ParseError reports a capacity string that could not be converted.
// Err is either shared.ErrCapacityMalformed or shared.ErrCapacityOverflow.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts a capacity string into bytes. Surrounding whitespace is
// ignored, whitespace between the magnitude and the unit is not.
// Fractional results are rounded half-up to the nearest byte.
func Parse(s string) (uint64, error) {
	matches := sizePattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, &ParseError{Input: s, Err: shared.ErrCapacityMalformed}
	}

	multiplier, ok := suffixes[strings.ToLower(matches[3])]
	if !ok {
		return 0, &ParseError{Input: s, Err: shared.ErrCapacityMalformed}
	}

	whole, frac := matches[1], matches[2]

	// (whole.frac * multiplier) computed as (wholefrac * multiplier) / 10^len(frac)
	num, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return 0, &ParseError{Input: s, Err: shared.ErrCapacityMalformed}
	}
	num.Mul(num, new(big.Int).SetUint64(multiplier))
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)

	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Lsh(rem, 1).Cmp(den) >= 0 {
		quo.Add(quo, big.NewInt(1))
	}

	if !quo.IsUint64() {
		return 0, &ParseError{Input: s, Err: shared.ErrCapacityOverflow}
	}
	return quo.Uint64(), nil
}

// Format returns the canonical string for n: the integer count of the largest
// unit that divides n exactly. Parse(Format(n)) == n for every n.
func Format(n uint64) string {
	if n == 0 {
		return "0B"
	}
	for _, u := range units {
		if n%u.multiplier == 0 {
			return strconv.FormatUint(n/u.multiplier, 10) + u.suffix
		}
	}
	return strconv.FormatUint(n, 10) + "B"
}
