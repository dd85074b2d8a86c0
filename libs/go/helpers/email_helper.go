package helpers

import (
	"net/mail"
	"strings"
)

// disposableEmailDomains lists throwaway mail providers rejected for student verification.
var disposableEmailDomains = map[string]struct{}{
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"tempmail.com":      {},
	"temp-mail.org":     {},
	"yopmail.com":       {},
	"trashmail.com":     {},
	"getnada.com":       {},
	"sharklasers.com":   {},
	"dispostable.com":   {},
}

// NormalizeEmail lowercases and trims an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks that s is a bare RFC 5322 address
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s, "@")
}

// EmailDomain returns the lowercased domain part of an address
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// ParentDomains returns domain and each parent with at least two labels,
// e.g. "cs.ox.ac.uk" -> ["cs.ox.ac.uk", "ox.ac.uk", "ac.uk"].
func ParentDomains(domain string) []string {
	labels := strings.Split(domain, ".")
	var out []string
	for i := 0; i+2 <= len(labels); i++ {
		out = append(out, strings.Join(labels[i:], "."))
	}
	return out
}

// IsDisposableEmailDomain reports whether the domain belongs to a throwaway provider
func IsDisposableEmailDomain(domain string) bool {
	_, ok := disposableEmailDomains[strings.ToLower(domain)]
	return ok
}
