package entity

// TokenPolicy controls how a customer's auth token expires.
type TokenPolicy string

const (
	// TokenPolicyRolling expires the token after the configured window of
	// inactivity; each use slides the window forward.
	TokenPolicyRolling TokenPolicy = "rolling"
	// TokenPolicyNever marks service/privileged accounts whose token is
	// refreshed on use but never expires.
	TokenPolicyNever TokenPolicy = "never"
)

// DefaultPurse is the starting balance credited to new accounts.
const DefaultPurse = 10000

type Customer struct {
	Base
	Username     string      `db:"username"`
	PasswordHash string      `db:"password"`
	Purse        int         `db:"purse"`
	TokenPolicy  TokenPolicy `db:"token_policy"`
	IsActive     bool        `db:"is_active"`
}
