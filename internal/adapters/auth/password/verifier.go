package password

import (
	"context"
	"errors"
	"strings"

	"cat-shelter-admin/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("staff password not configured")
	ErrUnauthorized  = errors.New("invalid staff secret")
)

// StaffUserID es el usuario que se asigna al secreto compartido del refugio.
const StaffUserID = "staff"

// Verifier implementa auth.AuthVerifier con un secreto compartido del personal.
// El Bearer token es el secreto en claro; se compara contra el hash argon2id configurado.
type Verifier struct {
	hash string
}

func NewVerifier(hash string) (*Verifier, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return nil, ErrNotConfigured
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		return nil, ErrInvalidHash
	}
	return &Verifier{hash: hash}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if v == nil || v.hash == "" {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	ok, err := Compare(token, v.hash)
	if err != nil {
		return auth.Claims{}, err
	}
	if !ok {
		return auth.Claims{}, ErrUnauthorized
	}
	return auth.Claims{UserID: StaffUserID}, nil
}
