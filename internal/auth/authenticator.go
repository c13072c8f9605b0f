// Package auth verifies user credentials and issues session tokens.
package auth

import (
	"context"

	"github.com/mmynk/foodgram/internal/models"
)

// Profile is what a new account is registered with, apart from its credential.
type Profile struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
}

// Authenticator is the credential scheme behind AuthService and UserService.
// PasswordAuthenticator is the only implementation.
type Authenticator interface {
	// Register stores a new account. It fails with ErrEmailExists when the
	// email or username is taken and ErrWeakPassword when the credential is
	// rejected by ValidateCredential.
	Register(ctx context.Context, profile Profile, credential string) (*models.User, error)

	// Authenticate returns the user owning email if credential matches.
	// Any mismatch is ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ChangeCredential swaps the user's credential once current is verified.
	ChangeCredential(ctx context.Context, userID, current, replacement string) error

	ValidateCredential(credential string) error
}
