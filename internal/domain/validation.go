package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxPartyIDLength = 64
)

var partyIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidatePartyID validates an opaque party identifier and returns it trimmed.
func ValidatePartyID(id string) (string, error) {
	id = strings.TrimSpace(id)

	if id == "" {
		return "", ErrPartyIDRequired
	}

	if len(id) > MaxPartyIDLength {
		return "", fmt.Errorf("%w: id exceeds %d characters", ErrPartyIDRequired, MaxPartyIDLength)
	}

	if !partyIDRegex.MatchString(id) {
		return "", fmt.Errorf("%w: id contains forbidden characters", ErrPartyIDRequired)
	}

	return id, nil
}

// ValidateLineAmount rejects negative line amounts; debit and credit
// columns only ever hold non-negative values.
func ValidateLineAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount.String())
	}
	return nil
}
