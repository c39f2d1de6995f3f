package ports

import (
	"context"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

// UserRepository defines persistence for identities and their role profiles.
// All lookups take normalized (trimmed, lowercased) values; the repository
// never normalizes on behalf of the caller.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByIdentifier matches either the email or the username field.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	// CreateWithProfile persists the user and the profile record matching its
	// role as one atomic unit. If the profile write fails the user write must
	// not persist.
	CreateWithProfile(ctx context.Context, user *domain.User) (*domain.User, error)
}

// ProfileRepository resolves role-specific extension records.
type ProfileRepository interface {
	FindHRProfileByUserID(ctx context.Context, userID string) (*domain.HRProfile, error)
	FindCandidateProfileByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error)
}
