package service

import "errors"

var (
	// ErrNotFound means no stored record matched the requested id.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	// ErrUserExists means the username (or email) is already taken.
	ErrUserExists = errors.New("usuário já existe")
	// ErrTokenInvalid means the token failed signature or expiry checks.
	ErrTokenInvalid = errors.New("token inválido ou expirado")
)
