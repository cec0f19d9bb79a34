package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	jwt        jwt.Service
	refreshTTL time.Duration
}

func NewAuthUsecase(users repository.UserRepository, sessions repository.SessionRepository, jwtSvc jwt.Service, refreshTTL time.Duration) *Auth {
	return &Auth{users: users, sessions: sessions, jwt: jwtSvc, refreshTTL: refreshTTL}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || !isValidPassword(in.Password) {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	role := user.RoleJobSeeker
	if strings.TrimSpace(in.Role) != "" {
		parsed, ok := user.ParseRole(strings.ToUpper(strings.TrimSpace(in.Role)))
		if !ok {
			return user.User{}, TokenPair{}, ErrInvalidInput
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	created, err := u.users.CreateUser(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return user.User{}, TokenPair{}, ErrEmailTaken
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	pair, err := u.issueTokens(ctx, created)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return created, pair, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(ctx, usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return usr, pair, nil
}

// Refresh rotates the session: the presented token must be a refresh token
// known to the session store, and it is invalidated when the new pair is
// issued.
func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	valid, err := u.sessions.RefreshTokenValid(ctx, claims.UserID, refreshToken)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	if !valid {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, ErrInternal
	}

	pair, err := u.issueTokens(ctx, usr)
	if err != nil {
		return TokenPair{}, err
	}

	if err := u.sessions.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (u *Auth) issueTokens(ctx context.Context, usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	if err := u.sessions.SaveRefreshToken(ctx, usr.ID, refresh, u.refreshTTL); err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email
}

func isValidPassword(password string) bool {
	return len(password) >= 8
}
