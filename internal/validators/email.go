package validators

import "strings"

// IsEmailFormatValid is a shallow shape check; deliverability is not our
// problem here.
func IsEmailFormatValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".")
}
