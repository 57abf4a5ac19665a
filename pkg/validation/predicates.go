package validation

import (
	"strings"
	"time"

	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// poBoxVariants are rejected in legal street addresses, case-insensitively.
var poBoxVariants = []string{
	"p.o. box",
	"po box",
	"p.o box",
	"post office box",
}

// DateInPast holds when the field parses to a calendar date strictly before
// today. Unparseable values hold; the format rule reports those.
func DateInPast(fieldID string) Predicate {
	return func(snap snapshot.Snapshot) bool {
		date, ok := ParseDate(snap.String(fieldID))
		if !ok {
			return true
		}
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return date.Before(today)
	}
}

// DateAfter holds when the field's date falls strictly after the other
// field's date. Either side missing or unparseable holds.
func DateAfter(fieldID, otherFieldID string) Predicate {
	return func(snap snapshot.Snapshot) bool {
		date, ok := ParseDate(snap.String(fieldID))
		if !ok {
			return true
		}
		other, ok := ParseDate(snap.String(otherFieldID))
		if !ok {
			return true
		}
		return date.After(other)
	}
}

// NoPOBox holds when the field does not contain a P.O. Box variant.
func NoPOBox(fieldID string) Predicate {
	return func(snap snapshot.Snapshot) bool {
		value := strings.ToLower(snap.String(fieldID))
		for _, variant := range poBoxVariants {
			if strings.Contains(value, variant) {
				return false
			}
		}
		return true
	}
}
