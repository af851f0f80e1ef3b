package jwt_generator

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// defaultExpirySeconds is used whenever an expiry string is not of the form
// <integer><s|m|h|d>. Unparseable values fall back to 15 minutes instead of
// failing.
const defaultExpirySeconds int64 = 900

// maxExpirySeconds is the longest expiry a time.Duration can hold. Larger
// values are clamped to it so the exp claim and expiresIn stay equal.
const maxExpirySeconds = int64(math.MaxInt64 / time.Second)

var expiryPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

var expiryUnitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

func parseExpiry(expiry string) int64 {
	matches := expiryPattern.FindStringSubmatch(expiry)
	if matches == nil {
		return defaultExpirySeconds
	}

	// the pattern only admits digits, so a parse error means out of range
	value, err := strconv.ParseUint(matches[1], 10, 64)
	unit := expiryUnitSeconds[matches[2]]
	if err != nil || value > uint64(maxExpirySeconds/unit) {
		return maxExpirySeconds
	}

	return int64(value) * unit
}

func expiryDuration(expiry string) time.Duration {
	return time.Duration(parseExpiry(expiry)) * time.Second
}
