package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/util"
)

type fakeUserRepo struct {
	users []domain.User
}

func (f *fakeUserRepo) CreateEmailUser(ctx context.Context, email, name string, passwordHash, passwordSalt []byte) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, errUniqueForTest
		}
	}
	user := domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		PasswordSalt: passwordSalt,
		IsActive:     true,
	}
	f.users = append(f.users, user)
	return &user, nil
}

func (f *fakeUserRepo) UpsertGoogleUser(ctx context.Context, email string, name *string, avatarURL *string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			f.users[i].GoogleLinked = true
			if name != nil {
				f.users[i].Name = *name
			}
			if avatarURL != nil {
				f.users[i].AvatarURL = avatarURL
			}
			return &f.users[i], nil
		}
	}
	user := domain.User{ID: uuid.New(), Email: email, GoogleLinked: true, IsActive: true}
	if name != nil {
		user.Name = *name
	}
	user.AvatarURL = avatarURL
	f.users = append(f.users, user)
	return &f.users[len(f.users)-1], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			if name != nil {
				f.users[i].Name = *name
			}
			if avatarURL != nil {
				f.users[i].AvatarURL = avatarURL
			}
			return &f.users[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash, passwordSalt []byte) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].PasswordHash = passwordHash
			f.users[i].PasswordSalt = passwordSalt
			return nil
		}
	}
	return sql.ErrNoRows
}

const strongPassword = "Str0ng-Passw0rd!"

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := &fakeUserRepo{}
	tokens := util.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, tokens, "client-id.apps.googleusercontent.com"), users
}

func TestAuthRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()

	result, err := svc.Register(context.Background(), " Traveler@Example.com ", "Alex", strongPassword)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.User.Email != "traveler@example.com" {
		t.Fatalf("expected normalized email, got %q", result.User.Email)
	}
	if result.Token == "" || result.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expected a live token")
	}

	login, err := svc.Login(context.Background(), "traveler@example.com", strongPassword)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if login.User.ID != result.User.ID {
		t.Fatalf("login resolved a different account")
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "traveler@example.com", "Alex", strongPassword); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := svc.Register(context.Background(), "traveler@example.com", "Sam", strongPassword); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthRegisterWeakPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "traveler@example.com", "Alex", "short"); !errors.Is(err, ErrPasswordPolicy) {
		t.Fatalf("expected ErrPasswordPolicy, got %v", err)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "traveler@example.com", "Alex", strongPassword); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := svc.Login(context.Background(), "traveler@example.com", "Wrong-Passw0rd!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", strongPassword); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthLoginDisabledAccount(t *testing.T) {
	svc, users := newAuthFixture()

	if _, err := svc.Register(context.Background(), "traveler@example.com", "Alex", strongPassword); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	users.users[0].IsActive = false

	if _, err := svc.Login(context.Background(), "traveler@example.com", strongPassword); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthLoginWithGoogleUpserts(t *testing.T) {
	svc, users := newAuthFixture()
	svc.validateGoogle = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good-token" {
			return nil, errors.New("bad token")
		}
		return &idtoken.Payload{Claims: map[string]any{
			"email":   "Traveler@Example.com",
			"name":    "Alex Traveler",
			"picture": "https://cdn.example.com/avatar.png",
		}}, nil
	}

	result, err := svc.LoginWithGoogle(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("LoginWithGoogle returned error: %v", err)
	}
	if !result.User.GoogleLinked {
		t.Fatalf("expected google-linked account")
	}
	if result.User.Email != "traveler@example.com" {
		t.Fatalf("expected lowercased email, got %q", result.User.Email)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected one account, got %d", len(users.users))
	}

	again, err := svc.LoginWithGoogle(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("second LoginWithGoogle returned error: %v", err)
	}
	if again.User.ID != result.User.ID || len(users.users) != 1 {
		t.Fatalf("expected the upsert to reuse the account")
	}

	if _, err := svc.LoginWithGoogle(context.Background(), "bad-token"); !errors.Is(err, ErrInvalidGoogleToken) {
		t.Fatalf("expected ErrInvalidGoogleToken, got %v", err)
	}
}

func TestAuthChangePassword(t *testing.T) {
	svc, _ := newAuthFixture()

	result, err := svc.Register(context.Background(), "traveler@example.com", "Alex", strongPassword)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	claims := &util.Claims{UserID: result.User.ID}

	next := strings.Replace(strongPassword, "Str0ng", "N3wer!", 1)
	if err := svc.ChangePassword(context.Background(), claims, "Wrong-Passw0rd!", next); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), claims, strongPassword, "weak"); !errors.Is(err, ErrPasswordPolicy) {
		t.Fatalf("expected ErrPasswordPolicy, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), claims, strongPassword, next); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if _, err := svc.Login(context.Background(), "traveler@example.com", next); err != nil {
		t.Fatalf("login with the new password failed: %v", err)
	}
}
