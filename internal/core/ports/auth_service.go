package ports

import (
	"context"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

// RegisterInput carries a registration request. All fields are mandatory;
// email and username are normalized by the service before any check.
type RegisterInput struct {
	Username string
	Fullname string
	Email    string
	Password string
	Role     string
}

// AuthService implements account registration and credential login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login authenticates by email or username and returns a signed session
	// token alongside the redacted user. Unknown identifier and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
}
