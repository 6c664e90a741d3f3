package validators

import "strings"

// NormalizePhone strips everything but digits. Customer matching compares
// normalized values only; "123-456-7890" and "(123) 456-7890" are the same
// customer key. No country-code canonicalization is attempted.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
