package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"
)

type mockUserRepo struct {
	created *user.User
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User
	err     error
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	m.created = &u
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

type mockSessionRepo struct {
	saved   map[string]uuid.UUID
	deleted []string
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{saved: map[string]uuid.UUID{}}
}

func (m *mockSessionRepo) SaveRefreshToken(_ context.Context, userID uuid.UUID, token string, _ time.Duration) error {
	m.saved[token] = userID
	return nil
}

func (m *mockSessionRepo) RefreshTokenValid(_ context.Context, userID uuid.UUID, token string) (bool, error) {
	owner, ok := m.saved[token]
	return ok && owner == userID, nil
}

func (m *mockSessionRepo) DeleteRefreshToken(_ context.Context, token string) error {
	delete(m.saved, token)
	m.deleted = append(m.deleted, token)
	return nil
}

type mockJWTService struct {
	claims jwt.Claims
	err    error
}

func (m mockJWTService) GenerateAccessToken(userID uuid.UUID, _, _ string) (string, error) {
	return "access-" + userID.String(), nil
}

func (m mockJWTService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return "refresh-" + userID.String(), nil
}

func (m mockJWTService) ValidateToken(string) (jwt.Claims, error) {
	return m.claims, m.err
}

func (m mockJWTService) IsRefreshToken(c jwt.Claims) bool {
	return c.TokenType == jwt.TokenTypeRefresh
}

func TestAuthUsecase_Register_DefaultsToJobSeeker(t *testing.T) {
	users := &mockUserRepo{}
	sessions := newMockSessionRepo()
	uc := NewAuthUsecase(users, sessions, mockJWTService{}, time.Hour)

	created, pair, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Role != user.RoleJobSeeker {
		t.Fatalf("expected JOB_SEEKER default, got %s", created.Role)
	}
	if created.Email != "asha@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if users.created == nil || users.created.PasswordHash == "secret-password" {
		t.Fatalf("password must be stored hashed")
	}
	if users.created.ID != uuid.Nil {
		t.Fatalf("id assignment belongs to the store, got %s", users.created.ID)
	}
	if pair.RefreshToken == "" {
		t.Fatalf("expected refresh token")
	}
	if _, ok := sessions.saved[pair.RefreshToken]; !ok {
		t.Fatalf("refresh token must be persisted in the session store")
	}
}

func TestAuthUsecase_Register_InvalidRole(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{}, newMockSessionRepo(), mockJWTService{}, time.Hour)

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret-password",
		Role:     "SUPERUSER",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthUsecase_Register_EmailTaken(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{err: repository.ErrEmailTaken}, newMockSessionRepo(), mockJWTService{}, time.Hour)

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret-password",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	users := &mockUserRepo{byEmail: map[string]user.User{
		"asha@example.com": {ID: uuid.New(), Email: "asha@example.com", PasswordHash: string(hash)},
	}}
	uc := NewAuthUsecase(users, newMockSessionRepo(), mockJWTService{}, time.Hour)

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "asha@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUsecase_Refresh_RotatesSession(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{byID: map[uuid.UUID]user.User{
		userID: {ID: userID, Email: "asha@example.com", Role: user.RoleJobSeeker},
	}}
	sessions := newMockSessionRepo()
	sessions.saved["old-refresh"] = userID

	svc := mockJWTService{claims: jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeRefresh}}
	uc := NewAuthUsecase(users, sessions, svc, time.Hour)

	pair, err := uc.Refresh(context.Background(), "old-refresh")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a full token pair")
	}
	if _, ok := sessions.saved["old-refresh"]; ok {
		t.Fatalf("old refresh token must be invalidated")
	}
	if _, ok := sessions.saved[pair.RefreshToken]; !ok {
		t.Fatalf("new refresh token must be persisted")
	}
}

func TestAuthUsecase_Refresh_UnknownSession(t *testing.T) {
	userID := uuid.New()
	svc := mockJWTService{claims: jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeRefresh}}
	uc := NewAuthUsecase(&mockUserRepo{}, newMockSessionRepo(), svc, time.Hour)

	_, err := uc.Refresh(context.Background(), "never-issued")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_Refresh_AccessTokenRejected(t *testing.T) {
	svc := mockJWTService{claims: jwt.Claims{UserID: uuid.New(), TokenType: jwt.TokenTypeAccess}}
	uc := NewAuthUsecase(&mockUserRepo{}, newMockSessionRepo(), svc, time.Hour)

	_, err := uc.Refresh(context.Background(), "an-access-token")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
