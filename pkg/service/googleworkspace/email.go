package googleworkspace

import (
	"fmt"
	"strings"
)

// maxEmailVariants bounds how many numbered addresses are probed
// before giving up
const maxEmailVariants = 20

// EmailCandidate builds the n-th candidate workspace address for a
// person: "first-l@domain" for n == 1, "first-l2@domain" onward.
// Names are lowercased and stripped of spaces; only the last name's
// initial is used. Returns "" when a usable local part cannot be
// derived.
func EmailCandidate(firstName, lastName, domain string, n int) string {
	first := sanitizeNamePart(firstName)
	last := sanitizeNamePart(lastName)
	if first == "" || last == "" || domain == "" {
		return ""
	}

	local := fmt.Sprintf("%s-%c", first, last[0])
	if n > 1 {
		local = fmt.Sprintf("%s%d", local, n)
	}
	return local + "@" + domain
}

func sanitizeNamePart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
