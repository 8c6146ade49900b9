package identity

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
)

type firebaseService struct {
	app *firebase.App
}

// NewFirebase wraps the Firebase Auth admin SDK as a Service.
func NewFirebase(app *firebase.App) Service {
	return &firebaseService{app: app}
}

func (f *firebaseService) CreateAccount(ctx context.Context, email, password string) (string, error) {
	client, err := f.app.Auth(ctx)
	if err != nil {
		return "", fmt.Errorf("createAccount: error getting auth client: %w", err)
	}

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := client.CreateUser(ctx, params)
	if err != nil {
		return "", mapCreateError(err)
	}

	return record.UID, nil
}

func (f *firebaseService) SetDisplayName(ctx context.Context, accountID, name string) error {
	client, err := f.app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("setDisplayName: error getting auth client: %w", err)
	}

	params := (&auth.UserToUpdate{}).DisplayName(name)
	if _, err := client.UpdateUser(ctx, accountID, params); err != nil {
		return fmt.Errorf("setDisplayName: error updating account %s: %w", accountID, err)
	}

	return nil
}

// mapCreateError translates SDK errors to the tagged errors callers branch
// on. The SDK rejects short passwords with a plain validation error, so that
// one is matched on message.
func mapCreateError(err error) error {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return ErrEmailInUse
	case strings.Contains(err.Error(), "password"):
		return ErrWeakPassword
	case strings.Contains(err.Error(), "email"):
		return ErrInvalidEmail
	}
	return fmt.Errorf("createAccount: error creating account: %w", err)
}
