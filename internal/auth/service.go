// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/middleware"
)

const tokenTypeBearer = "bearer"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// UserRegistrar creates customer accounts. Duplicate email or phone come
// back as a client-facing conflict.
type UserRegistrar interface {
	Register(ctx context.Context, input NewUser) (*Account, error)
}

type Service struct {
	repo  Repository
	jwt   *JWTManager
	users UserRegistrar
	redis *redis.Client
}

func NewService(
	repo Repository,
	jwt *JWTManager,
	users UserRegistrar,
	redisClient *redis.Client,
) *Service {
	return &Service{
		repo:  repo,
		jwt:   jwt,
		users: users,
		redis: redisClient,
	}
}

func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account, err := s.users.Register(ctx, NewUser{
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		Phone:        req.Phone,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", account.ID)

	return s.authResponse(account)
}

// Login authenticates customers and admins through one lookup. When the
// email belongs to both, the admin account wins.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	account, err := s.repo.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.lookupFailure(req.Password, err)
	}

	if err := s.checkCredentials(ctx, account, req.Password); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "account logged in",
		"account_id", account.ID,
		"kind", account.Kind,
	)

	return s.authResponse(account)
}

func (s *Service) AdminLogin(
	ctx context.Context,
	req LoginRequest,
) (*AdminAuthResponse, error) {
	account, err := s.repo.FindAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.lookupFailure(req.Password, err)
	}

	if err := s.checkCredentials(ctx, account, req.Password); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.issueToken(account)
	if err != nil {
		return nil, err
	}

	return &AdminAuthResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		Admin:       toAdmin(account),
	}, nil
}

// ResolvePrincipal verifies the token and loads its subject from the
// collection named by the token type.
func (s *Service) ResolvePrincipal(
	ctx context.Context,
	token string,
) (*middleware.Principal, error) {
	claims, err := s.jwt.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.IsAccessTokenBlacklisted(ctx, claims.JTI)
	if err != nil {
		slog.WarnContext(ctx, "token blacklist unavailable", "error", err)
	}
	if revoked {
		return nil, fmt.Errorf("resolve principal: %w", core.ErrTokenRevoked)
	}

	account, err := s.repo.GetAccount(ctx, claims.Type, claims.Subject)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.UnauthorizedError(claims.Type + " not found")
		}
		return nil, fmt.Errorf("resolve principal: %w", err)
	}

	if !account.IsActive {
		return nil, core.UnauthorizedError("Account is disabled")
	}

	return account.Principal(), nil
}

func (s *Service) Me(p *middleware.Principal) ProfileResponse {
	resp := ProfileResponse{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		IsAdmin: p.IsAdmin(),
	}
	if p.IsAdmin() {
		resp.Role = p.Role
	}
	return resp
}

func (s *Service) AdminMe(p *middleware.Principal) AdminResponse {
	return AdminResponse{
		ID:    p.ID,
		Email: p.Email,
		Name:  p.Name,
		Role:  p.Role,
	}
}

// Logout blacklists the presented token until it would have expired.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.VerifyAccessToken(token)
	if err != nil {
		return err
	}

	return s.RevokeAccessToken(ctx, claims.JTI, claims.ExpiresAt)
}

func (s *Service) RevokeAccessToken(
	ctx context.Context,
	jti string,
	expiresAt time.Time,
) error {
	if s.redis == nil || jti == "" {
		return nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.redis.Set(ctx, blacklistKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}

	return nil
}

func (s *Service) IsAccessTokenBlacklisted(
	ctx context.Context,
	jti string,
) (bool, error) {
	if s.redis == nil || jti == "" {
		return false, nil
	}

	exists, err := s.redis.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}

	return exists > 0, nil
}

func (s *Service) lookupFailure(password string, err error) error {
	if errors.Is(err, core.ErrNotFound) {
		//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
		_, _, _ = core.VerifyPasswordTimingSafe(password, nil)
		return ErrInvalidCredentials
	}
	return fmt.Errorf("find account: %w", err)
}

func (s *Service) checkCredentials(
	ctx context.Context,
	account *Account,
	password string,
) error {
	valid, newHash, err := core.VerifyPasswordTimingSafe(
		password,
		&account.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return ErrInvalidCredentials
	}

	if !account.IsActive {
		return ErrAccountDisabled
	}

	if newHash != "" {
		if err := s.repo.UpdatePasswordHash(ctx, account.Kind, account.ID, newHash); err != nil {
			slog.WarnContext(ctx, "password rehash failed",
				"account_id", account.ID,
				"error", err,
			)
		}
	}

	return nil
}

func (s *Service) issueToken(account *Account) (string, time.Time, error) {
	token, expiresAt, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		Subject: account.ID,
		Email:   account.Email,
		Type:    account.Kind,
		Role:    account.Role,
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("create access token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *Service) authResponse(account *Account) (*AuthResponse, error) {
	token, expiresAt, err := s.issueToken(account)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        toProfile(account),
	}, nil
}

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}

var _ middleware.PrincipalResolver = (*Service)(nil)
