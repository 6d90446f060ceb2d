package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/innovest/platform/internal/api/metrics"
	"github.com/innovest/platform/internal/core/domain"
	"github.com/innovest/platform/internal/core/ports"
	"github.com/innovest/platform/internal/notifications"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements registration and the two login entry points.
type AuthService struct {
	users      ports.UserRepository
	notify     notifications.Enqueuer
	jwtSecret  string
	tokenTTL   time.Duration
	adminEmail string
	log        zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	notify notifications.Enqueuer,
	jwtSecret string,
	tokenTTL time.Duration,
	adminEmail string,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		users:      users,
		notify:     notify,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		adminEmail: adminEmail,
		log:        log,
	}
}

// Register creates a pending account and queues the two registration mails.
// The admin alert and the registrant acknowledgement are fire-and-forget;
// neither can fail the registration.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if !input.Role.IsRegisterable() {
		return nil, domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Bio:          input.Bio,
		Role:         input.Role,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch input.Role {
	case domain.RoleInvestor:
		user.Investor = input.Investor
	case domain.RoleInnovator:
		user.Innovator = input.Innovator
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(created.Role)).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	s.notify.Enqueue(notifications.AdminRegistrationAlert(s.adminEmail, created))
	s.notify.Enqueue(notifications.RegistrationReceived(created))

	return created, nil
}

// Login authenticates a non-admin account. Unknown email, wrong password and
// admin accounts are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("standard", "failure").Inc()
		return "", nil, err
	}
	if user.Role == domain.RoleAdmin {
		metrics.LoginsTotal.WithLabelValues("standard", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	metrics.LoginsTotal.WithLabelValues("standard", "success").Inc()
	return token, user, nil
}

// AdminLogin authenticates through the admin entry point. A valid non-admin
// credential fails distinctly so the client can route to the standard login.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return "", nil, err
	}
	if user.Role != domain.RoleAdmin {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return "", nil, domain.ErrNotAdminAccount
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	return token, user, nil
}

// authenticate resolves the account and checks the password. Both failure
// modes collapse into ErrInvalidCredentials.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
