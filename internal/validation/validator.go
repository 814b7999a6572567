package validation

import (
	"strings"
	"unicode/utf8"
)

// LoginKind classifies a login string before lookup.
type LoginKind int

const (
	LoginUnknown LoginKind = iota
	LoginEmail
	LoginUsername
)

func (k LoginKind) String() string {
	switch k {
	case LoginEmail:
		return "email"
	case LoginUsername:
		return "username"
	default:
		return "unknown"
	}
}

// Validator applies a Policy. The zero value is not usable; use New.
type Validator struct {
	policy  Policy
	allowed map[rune]struct{}
}

// New builds a Validator for p. Zero length bounds are replaced by
// DefaultPolicy values so a partially filled Policy from JSON still works.
func New(p Policy) *Validator {
	def := DefaultPolicy()
	if p.UsernameAllowed == "" {
		p.UsernameAllowed = def.UsernameAllowed
	}
	if p.UsernameMinLen <= 0 {
		p.UsernameMinLen = def.UsernameMinLen
	}
	if p.UsernameMaxLen <= 0 {
		p.UsernameMaxLen = def.UsernameMaxLen
	}
	if p.PasswordMinLen <= 0 {
		p.PasswordMinLen = def.PasswordMinLen
	}
	if p.PasswordMaxLen <= 0 {
		p.PasswordMaxLen = def.PasswordMaxLen
	}
	if p.EmailMaxLen <= 0 {
		p.EmailMaxLen = def.EmailMaxLen
	}

	allowed := make(map[rune]struct{}, len(p.UsernameAllowed))
	for _, r := range p.UsernameAllowed {
		allowed[r] = struct{}{}
	}

	return &Validator{policy: p, allowed: allowed}
}

// Policy returns the effective policy.
func (v *Validator) Policy() Policy {
	return v.policy
}

// IsValidUsername reports whether s is a non-empty username within the length
// bounds made only of allowed characters.
func (v *Validator) IsValidUsername(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	n := utf8.RuneCountInString(s)
	if n < v.policy.UsernameMinLen || n > v.policy.UsernameMaxLen || n == 0 {
		return false
	}
	for _, r := range s {
		if _, ok := v.allowed[r]; !ok {
			return false
		}
	}
	return true
}

// IsValidPassword reports whether s satisfies the length and character-class
// rules of the policy.
func (v *Validator) IsValidPassword(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	n := utf8.RuneCountInString(s)
	if n < v.policy.PasswordMinLen || n > v.policy.PasswordMaxLen {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case r > ' ' && r < 0x7f:
			symbol = true
		}
	}

	p := v.policy
	return (!p.PasswordRequireUpper || upper) &&
		(!p.PasswordRequireLower || lower) &&
		(!p.PasswordRequireDigit || digit) &&
		(!p.PasswordRequireSymbol || symbol)
}

// IsValidEmail reports whether s looks like local@domain.tld within the
// length bound.
func (v *Validator) IsValidEmail(s string) bool {
	if s == "" || !utf8.ValidString(s) || utf8.RuneCountInString(s) > v.policy.EmailMaxLen {
		return false
	}

	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	for _, r := range local {
		if r <= ' ' || r >= 0x7f {
			return false
		}
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isDomainLabel(label) {
			return false
		}
	}
	return true
}

// ClassifyLogin decides how a login string is looked up: email first, then
// username, otherwise LoginUnknown.
func (v *Validator) ClassifyLogin(login string) LoginKind {
	switch {
	case v.IsValidEmail(login):
		return LoginEmail
	case v.IsValidUsername(login):
		return LoginUsername
	default:
		return LoginUnknown
	}
}

func isDomainLabel(label string) bool {
	if label == "" || label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
