package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healhub/healhub_backend/config"
	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/email"
	"github.com/healhub/healhub_backend/pkg/session"
	"github.com/healhub/healhub_backend/pkg/util/otp"
	"github.com/healhub/healhub_backend/pkg/util/password"
)

// UserStore is the slice of the users repository this service needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	SetResetCode(ctx context.Context, userID uuid.UUID, code, expires string) error
	ResetCredential(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// Mailer dispatches notification mail.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

type Service interface {
	Login(ctx context.Context, email, password string) (*entity.UserPublic, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entity.UserPublic, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	users   UserStore
	mailer  Mailer
	session *session.Store
	cfg     *config.Config
	now     func() time.Time
}

func New(users UserStore, mailer Mailer, sess *session.Store, cfg *config.Config) Service {
	return &authService{
		users:   users,
		mailer:  mailer,
		session: sess,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *authService) Login(ctx context.Context, emailAddr, pass string) (*entity.UserPublic, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(emailAddr))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if u.IsActive != nil && !*u.IsActive {
		return nil, ErrAccountDisabled
	}

	if u.PasswordHash == nil || !password.Match(*u.PasswordHash, pass) {
		return nil, ErrInvalidCredentials
	}

	s.session.Set(*u)

	pub := u.Public()
	return &pub, nil
}

// Logout clears the session unconditionally; logging out while logged
// out is fine.
func (s *authService) Logout(_ context.Context) error {
	s.session.Clear()
	return nil
}

func (s *authService) CurrentUser(_ context.Context) (*entity.UserPublic, error) {
	u, ok := s.session.Current()
	if !ok {
		return nil, nil
	}
	pub := u.Public()
	return &pub, nil
}

// ForgotPassword stores a fresh reset code and emails it. An unknown
// email is absorbed into success so the endpoint can't be used to probe
// which addresses are registered.
func (s *authService) ForgotPassword(ctx context.Context, emailAddr string) error {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(emailAddr))
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return nil
	}

	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate reset code: %w", err)
	}

	ttl := s.cfg.Auth.ResetCodeTTLMinutesOrDefault()
	expires := s.now().UTC().Add(time.Duration(ttl) * time.Minute).Format(time.RFC3339)

	if err := s.users.SetResetCode(ctx, u.UserID, code, expires); err != nil {
		return fmt.Errorf("store reset code: %w", err)
	}

	if err := s.mailer.Send(ctx, email.BuildPasswordResetEmail(u.Email, code, ttl)); err != nil {
		slog.Warn("reset code email failed", "user_id", u.UserID, "error", err)
		return err
	}

	return nil
}

// ResetPassword swaps the credential digest for a caller holding a live
// reset code. The code and its expiry are cleared in the same update, so
// a second reset with the same code fails.
func (s *authService) ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(emailAddr))
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return ErrInvalidResetCode
	}

	if u.PasswordResetToken == nil || *u.PasswordResetToken != strings.TrimSpace(code) {
		return ErrInvalidResetCode
	}

	if u.PasswordResetExpires == nil {
		return ErrResetCodeExpired
	}
	expires, err := time.Parse(time.RFC3339, *u.PasswordResetExpires)
	if err != nil || !s.now().Before(expires) {
		return ErrResetCodeExpired
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.ResetCredential(ctx, u.UserID, hash); err != nil {
		return fmt.Errorf("update credential: %w", err)
	}

	return nil
}
