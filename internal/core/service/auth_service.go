package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/recruiting-api/internal/api/metrics"
	"github.com/talenthub/recruiting-api/internal/core/domain"
	"github.com/talenthub/recruiting-api/internal/core/ports"
	"github.com/talenthub/recruiting-api/internal/pkg/password"
	"github.com/talenthub/recruiting-api/internal/pkg/token"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dummyHash is verified against when a login identifier matches no account so
// that unknown-user and wrong-password failures cost the same bcrypt work.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0xB1PBGxtLPmVtcS9rRONk3PqMu"

// AuthService implements registration and login: the account registrar and
// the session issuer.
type AuthService struct {
	repo     ports.UserRepository
	hasher   password.Hasher
	audit    ports.AuditSink
	logger   zerolog.Logger
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo ports.UserRepository, hasher password.Hasher, audit ports.AuditSink, secret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		audit:    audit,
		logger:   logger,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register validates the input, enforces uniqueness on the normalized email
// and username (in that order), and creates the user together with its role
// profile in one atomic repository write. The returned user never carries the
// password hash outward (the field is json-redacted on the domain type).
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Fullname == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		metrics.RegistrationFailuresTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}

	email := normalize(input.Email)
	username := normalize(input.Username)

	role, err := domain.ParseRole(input.Role)
	if err != nil || !role.Registrable() {
		s.logger.Warn().Str("email", email).Str("role_attempted", input.Role).Msg("invalid role registration attempt")
		s.recordAudit(domain.AuditEvent{
			Kind:    domain.AuditForbiddenRoleAttempt,
			Subject: email,
			Email:   email,
			Role:    input.Role,
		})
		metrics.RegistrationFailuresTotal.WithLabelValues("forbidden_role").Inc()
		return nil, domain.ErrRoleNotRegistrable
	}

	if !emailPattern.MatchString(email) {
		metrics.RegistrationFailuresTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}

	if len(input.Password) < minPasswordLength {
		metrics.RegistrationFailuresTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		s.logger.Warn().Str("email", email).Str("reason", "duplicate_email").Msg("registration failed")
		metrics.RegistrationFailuresTotal.WithLabelValues("email_taken").Inc()
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup by email: %w", err)
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		metrics.RegistrationFailuresTotal.WithLabelValues("username_taken").Inc()
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup by username: %w", err)
	}

	start := time.Now()
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())

	user := &domain.User{
		Username:     username,
		Fullname:     input.Fullname,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.CreateWithProfile(ctx, user)
	if err != nil {
		// A concurrent registration can still lose the race between the
		// uniqueness check and the write; the repository reports that as the
		// same conflict errors.
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
			metrics.RegistrationFailuresTotal.WithLabelValues("email_taken").Inc()
			return nil, err
		}
		metrics.RegistrationFailuresTotal.WithLabelValues("internal").Inc()
		return nil, fmt.Errorf("create user with profile: %w", err)
	}

	s.recordAudit(domain.AuditEvent{
		Kind:    domain.AuditUserRegistered,
		Subject: created.ID,
		Email:   created.Email,
		Role:    string(created.Role),
	})
	metrics.RegistrationsTotal.WithLabelValues(string(created.Role)).Inc()
	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	return created, nil
}

// Login authenticates by email or username and issues a signed session token.
// Unknown identifier and wrong password return the same error and burn the
// same bcrypt work, so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, identifier, plaintext string) (string, *domain.User, error) {
	if identifier == "" || plaintext == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByIdentifier(ctx, normalize(identifier))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.hasher.Verify(plaintext, dummyHash)
			return "", nil, s.loginFailed(identifier, "unknown_identifier")
		}
		return "", nil, fmt.Errorf("lookup by identifier: %w", err)
	}

	if s.hasher.Verify(plaintext, user.PasswordHash) != nil {
		return "", nil, s.loginFailed(identifier, "wrong_password")
	}

	signed, err := token.Sign(user, s.secret, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return signed, user, nil
}

// loginFailed funnels every credential failure through one path: same error
// value outward, the distinguishing reason kept to the audit trail.
func (s *AuthService) loginFailed(identifier, reason string) error {
	s.recordAudit(domain.AuditEvent{
		Kind:    domain.AuditLoginFailed,
		Subject: normalize(identifier),
		Reason:  reason,
	})
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	return domain.ErrInvalidCredentials
}

func (s *AuthService) recordAudit(event domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	s.audit.Record(event)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
