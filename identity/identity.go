package identity

import (
	"context"
	"errors"
)

var (
	ErrEmailInUse   = errors.New("email is already in use")
	ErrWeakPassword = errors.New("password is too weak")
	ErrInvalidEmail = errors.New("email address is malformed")
)

// Service is the external identity provider owning publican credentials.
// Accounts it creates live independently of the publican document keyed by
// their id.
type Service interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	SetDisplayName(ctx context.Context, accountID, name string) error
}
