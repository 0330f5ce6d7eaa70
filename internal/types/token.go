package types

// TokenClaims carries the identity decoded from a bearer token.
type TokenClaims struct {
	Username string
}
