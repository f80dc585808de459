package model

import (
	"strings"

	"github.com/coldemails/sales-hub/pkg/domain/types"
)

// PhoneNumber is one provisioned number at the telephony provider
type PhoneNumber struct {
	SID          types.NumberSID `json:"sid"`
	Number       string          `json:"phoneNumber"`
	FriendlyName string          `json:"friendlyName,omitempty"`
}

// AvailableNumber is a purchasable number returned by inventory search
type AvailableNumber struct {
	Number   string `json:"phoneNumber"`
	Locality string `json:"locality,omitempty"`
	Region   string `json:"region,omitempty"`
}

// NumberLink is the CRM side of a phone number: which CRM user the
// number is attached to. The link ID is the CRM user ID, not a name.
type NumberLink struct {
	Number       string          `json:"phoneNumber"`
	LinkedUserID types.CRMUserID `json:"linkedUser"`
}

// AssignedNumber is the payload of a successful telephony onboarding step
type AssignedNumber struct {
	Number       string          `json:"phoneNumber"`
	SID          types.NumberSID `json:"sid"`
	FriendlyName string          `json:"friendlyName"`
}

// ReleaseResult is the payload of a successful telephony offboarding step
type ReleaseResult struct {
	ReleasedCount   int      `json:"releasedCount"`
	ReleasedNumbers []string `json:"releasedNumbers,omitempty"`
}

// NumberStatus combines a provisioned number with its CRM link for the
// inventory dashboard
type NumberStatus struct {
	PhoneNumber
	InCRM        bool            `json:"inCRM"`
	LinkedUserID types.CRMUserID `json:"linkedUser,omitempty"`
}

// MatchOwnedNumbers selects exactly the numbers owned by the given CRM
// user. A number matches when its CRM link ID equals the user ID AND
// its digits start with one of the reserved prefixes. Matching is by
// ID equality only; there is no name-based fallback.
func MatchOwnedNumbers(numbers []PhoneNumber, links []NumberLink, userID types.CRMUserID, prefixes []string) []PhoneNumber {
	linked := make(map[string]types.CRMUserID, len(links))
	for _, l := range links {
		linked[normalizeNumber(l.Number)] = l.LinkedUserID
	}

	var owned []PhoneNumber
	for _, n := range numbers {
		if linked[normalizeNumber(n.Number)] != userID {
			continue
		}
		if !HasReservedPrefix(n.Number, prefixes) {
			continue
		}
		owned = append(owned, n)
	}
	return owned
}

// HasReservedPrefix reports whether the number's national digits start
// with one of the reserved prefixes (country code and formatting are
// ignored)
func HasReservedPrefix(number string, prefixes []string) bool {
	digits := normalizeNumber(number)
	digits = strings.TrimPrefix(digits, "1") // US country code
	for _, p := range prefixes {
		if strings.HasPrefix(digits, p) {
			return true
		}
	}
	return false
}

func normalizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
