// Package validation holds the pure predicates over identity fields and the
// policy that parameterises them. Nothing here has side effects.
package validation

// DefaultUsernameChars is the username charset used when a Policy leaves
// UsernameAllowed empty.
const DefaultUsernameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_.-"

// Policy configures the validators. Lengths are counted in runes.
type Policy struct {
	UsernameAllowed string `json:"username_allowed"`
	UsernameMinLen  int    `json:"username_min_len"`
	UsernameMaxLen  int    `json:"username_max_len"`

	PasswordMinLen        int  `json:"password_min_len"`
	PasswordMaxLen        int  `json:"password_max_len"`
	PasswordRequireUpper  bool `json:"password_require_upper"`
	PasswordRequireLower  bool `json:"password_require_lower"`
	PasswordRequireDigit  bool `json:"password_require_digit"`
	PasswordRequireSymbol bool `json:"password_require_symbol"`

	EmailMaxLen int `json:"email_max_len"`
}

// DefaultPolicy matches the users table (username ≤ 50, email ≤ 100) and
// requires passwords of at least 7 runes mixing upper, lower, digit and symbol.
func DefaultPolicy() Policy {
	return Policy{
		UsernameAllowed: DefaultUsernameChars,
		UsernameMinLen:  1,
		UsernameMaxLen:  50,

		PasswordMinLen:        7,
		PasswordMaxLen:        128,
		PasswordRequireUpper:  true,
		PasswordRequireLower:  true,
		PasswordRequireDigit:  true,
		PasswordRequireSymbol: true,

		EmailMaxLen: 100,
	}
}
