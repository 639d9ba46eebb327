package echoapi

import (
	"github.com/bahati/malezi/core"
	"github.com/bahati/malezi/core/user"
)

// GetUserClaims builds the authorization claims for usr from conf's JWT
// settings. It is the same path login takes; exposed for tests and tools
// that need to mint a token for a known user.
func GetUserClaims(conf *core.Config, usr user.User) *Claims {
	return newAuthKit(conf).getUserClaims(usr)
}

// GenerateToken signs claims into a compact JWT string.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	return newAuthKit(conf).generateToken(claims)
}
