package auth

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/healhub/healhub_backend/config"
	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/apperr"
	"github.com/healhub/healhub_backend/pkg/email"
	"github.com/healhub/healhub_backend/pkg/session"
	"github.com/healhub/healhub_backend/pkg/util/password"
)

type fakeUserStore struct {
	users map[string]*entity.User

	resetCalls      int
	credentialCalls int
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) SetResetCode(_ context.Context, userID uuid.UUID, code, expires string) error {
	f.resetCalls++
	for _, u := range f.users {
		if u.UserID == userID {
			u.PasswordResetToken = &code
			u.PasswordResetExpires = &expires
			return nil
		}
	}
	return apperr.Unexpected("users reset-code update matched no rows")
}

func (f *fakeUserStore) ResetCredential(_ context.Context, userID uuid.UUID, hash string) error {
	f.credentialCalls++
	for _, u := range f.users {
		if u.UserID == userID {
			u.PasswordHash = &hash
			u.PasswordResetToken = nil
			u.PasswordResetExpires = nil
			return nil
		}
	}
	return apperr.Unexpected("users credential update matched no rows")
}

type fakeMailer struct {
	sent []email.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m email.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newFixture(t *testing.T) (*fakeUserStore, *fakeMailer, *session.Store, *authService) {
	t.Helper()

	hash, err := password.Hash("right-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	store := &fakeUserStore{users: map[string]*entity.User{
		"doc@healhub.test": {
			UserID:       uuid.New(),
			Email:        "doc@healhub.test",
			PasswordHash: &hash,
			Role:         strPtr("doctor"),
			IsActive:     boolPtr(true),
		},
		"off@healhub.test": {
			UserID:       uuid.New(),
			Email:        "off@healhub.test",
			PasswordHash: &hash,
			Role:         strPtr("doctor"),
			IsActive:     boolPtr(false),
		},
	}}

	mailer := &fakeMailer{}
	sess := session.NewStore()
	svc := New(store, mailer, sess, &config.Config{}).(*authService)
	return store, mailer, sess, svc
}

func TestLogin(t *testing.T) {
	_, _, sess, svc := newFixture(t)
	ctx := context.Background()

	pub, err := svc.Login(ctx, "doc@healhub.test", "right-password")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if pub.Email != "doc@healhub.test" {
		t.Errorf("Login() email = %s", pub.Email)
	}
	if _, ok := sess.Current(); !ok {
		t.Error("Login() did not populate the session")
	}
	if _, err := sess.Require(session.RoleDoctor); err != nil {
		t.Errorf("Require(doctor) after login = %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	_, _, _, svc := newFixture(t)
	ctx := context.Background()

	_, errUnknown := svc.Login(ctx, "nobody@healhub.test", "whatever")
	_, errWrongPass := svc.Login(ctx, "doc@healhub.test", "wrong-password")

	if errUnknown == nil || errWrongPass == nil {
		t.Fatal("expected both logins to fail")
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Errorf("unknown email error %q differs from wrong password error %q",
			errUnknown.Error(), errWrongPass.Error())
	}
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", errUnknown)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	_, _, sess, svc := newFixture(t)

	// Correct password must not matter for a disabled account.
	_, err := svc.Login(context.Background(), "off@healhub.test", "right-password")
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("Login() error = %v, want ErrAccountDisabled", err)
	}
	if _, ok := sess.Current(); ok {
		t.Error("disabled login must not create a session")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	_, _, sess, svc := newFixture(t)
	ctx := context.Background()

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() with no session = %v", err)
	}

	if _, err := svc.Login(ctx, "doc@healhub.test", "right-password"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, ok := sess.Current(); ok {
		t.Error("session survived logout")
	}
}

func TestCurrentUserNeverExposesHash(t *testing.T) {
	_, _, _, svc := newFixture(t)
	ctx := context.Background()

	pub, err := svc.CurrentUser(ctx)
	if err != nil || pub != nil {
		t.Fatalf("CurrentUser() with no session = %v, %v", pub, err)
	}

	if _, err := svc.Login(ctx, "doc@healhub.test", "right-password"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	pub, err = svc.CurrentUser(ctx)
	if err != nil || pub == nil {
		t.Fatalf("CurrentUser() = %v, %v", pub, err)
	}
	if pub.Email != "doc@healhub.test" {
		t.Errorf("CurrentUser() email = %s", pub.Email)
	}
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	store, mailer, _, svc := newFixture(t)

	if err := svc.ForgotPassword(context.Background(), "nobody@healhub.test"); err != nil {
		t.Fatalf("ForgotPassword() = %v, want success for unknown email", err)
	}
	if store.resetCalls != 0 {
		t.Error("unknown email must leave no side effect")
	}
	if len(mailer.sent) != 0 {
		t.Error("unknown email must not trigger mail")
	}
}

func TestForgotPasswordStoresCodeAndSendsMail(t *testing.T) {
	store, mailer, _, svc := newFixture(t)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

	if err := svc.ForgotPassword(context.Background(), "doc@healhub.test"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	u := store.users["doc@healhub.test"]
	if u.PasswordResetToken == nil {
		t.Fatal("reset code not stored")
	}
	if !regexp.MustCompile(`^\d{6}$`).MatchString(*u.PasswordResetToken) {
		t.Errorf("reset code %q is not 6 zero-padded digits", *u.PasswordResetToken)
	}
	if u.PasswordResetExpires == nil || *u.PasswordResetExpires != "2024-03-15T10:15:00Z" {
		t.Errorf("expiry = %v, want now+15m", u.PasswordResetExpires)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(mailer.sent))
	}
	if mailer.sent[0].To != "doc@healhub.test" {
		t.Errorf("mail to = %s", mailer.sent[0].To)
	}
}

func TestForgotPasswordSurfacesMailFailure(t *testing.T) {
	_, mailer, _, svc := newFixture(t)
	mailer.err = errors.New("smtp down")

	err := svc.ForgotPassword(context.Background(), "doc@healhub.test")
	if err == nil || !errors.Is(err, mailer.err) {
		t.Errorf("ForgotPassword() error = %v, want mail failure surfaced", err)
	}
}

func TestResetPassword(t *testing.T) {
	store, _, _, svc := newFixture(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "doc@healhub.test"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	code := *store.users["doc@healhub.test"].PasswordResetToken

	if err := svc.ResetPassword(ctx, "doc@healhub.test", code, "brand-new-pass"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	u := store.users["doc@healhub.test"]
	if u.PasswordResetToken != nil || u.PasswordResetExpires != nil {
		t.Error("reset code and expiry must be cleared together")
	}
	if !password.Match(*u.PasswordHash, "brand-new-pass") {
		t.Error("new password does not verify")
	}

	// The code was cleared by the first reset, so replaying it fails.
	if err := svc.ResetPassword(ctx, "doc@healhub.test", code, "another-pass"); !errors.Is(err, ErrInvalidResetCode) {
		t.Errorf("second reset error = %v, want ErrInvalidResetCode", err)
	}
}

func TestResetPasswordRejections(t *testing.T) {
	store, _, _, svc := newFixture(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "doc@healhub.test"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	code := *store.users["doc@healhub.test"].PasswordResetToken

	t.Run("unknown email", func(t *testing.T) {
		if err := svc.ResetPassword(ctx, "nobody@healhub.test", code, "x"); !errors.Is(err, ErrInvalidResetCode) {
			t.Errorf("error = %v, want ErrInvalidResetCode", err)
		}
	})

	t.Run("wrong code", func(t *testing.T) {
		if err := svc.ResetPassword(ctx, "doc@healhub.test", "000000x", "x"); !errors.Is(err, ErrInvalidResetCode) {
			t.Errorf("error = %v, want ErrInvalidResetCode", err)
		}
	})

	t.Run("expired code", func(t *testing.T) {
		svc.now = func() time.Time { return now.Add(16 * time.Minute) }
		defer func() { svc.now = func() time.Time { return now } }()
		if err := svc.ResetPassword(ctx, "doc@healhub.test", code, "x"); !errors.Is(err, ErrResetCodeExpired) {
			t.Errorf("error = %v, want ErrResetCodeExpired", err)
		}
	})

	t.Run("missing expiry", func(t *testing.T) {
		store.users["doc@healhub.test"].PasswordResetExpires = nil
		if err := svc.ResetPassword(ctx, "doc@healhub.test", code, "x"); !errors.Is(err, ErrResetCodeExpired) {
			t.Errorf("error = %v, want ErrResetCodeExpired", err)
		}
	})

	if store.credentialCalls != 0 {
		t.Error("no rejection path may touch the credential")
	}
}
