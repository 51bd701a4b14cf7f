// Package auth verifies credentials and turns them into sessions.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/user"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	repouser "github.com/amirasaad/networth/pkg/repository/user"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/amirasaad/networth/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claim names carried by issued tokens.
const (
	ClaimUserID = "user_id"
	ClaimEmail  = "email"
)

// dummyHash is compared against when the email is unknown so that both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$.IIxpSc3OElWXLV2Wj517eUGmZ64IQgBNQ4OcFbanW85CTrgrIDQy"

// Strategy issues the credential a client presents after login.
type Strategy interface {
	Login(ctx context.Context, email, password string) (*dto.UserRead, error)
	GenerateToken(ctx context.Context, u *dto.UserRead) (string, error)
}

type Service struct {
	uow      repository.UnitOfWork
	strategy Strategy
	logger   *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, strategy: strategy, logger: logger.With("service", "auth")}
}

// NewWithBasic verifies passwords without issuing tokens. The CLI uses it.
func NewWithBasic(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return New(uow, NewBasicAuthStrategy(uow, logger), logger)
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(uow, NewJWTStrategy(uow, cfg, logger), logger)
}

func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("op", "Login")
	log.Debug("Login called", "email", email)
	u, err = s.strategy.Login(ctx, email, password)
	if err != nil {
		log.Error("Login failed", "email", email, "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

func (s *Service) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	log.Debug("GenerateToken called")
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	return token, nil
}

// SessionFromToken reads the user id and email claims of a verified token.
func SessionFromToken(token *jwt.Token) (session.Session, error) {
	if token == nil || !token.Valid {
		return session.Session{}, session.ErrNoSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return session.Session{}, session.ErrNoSession
	}
	rawID, _ := claims[ClaimUserID].(string)
	email, _ := claims[ClaimEmail].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return session.Session{}, session.ErrNoSession
	}
	return session.New(userID, email)
}

// verify looks up email and checks password against the stored hash.
// Unknown emails and wrong passwords both yield user.ErrUserUnauthorized.
func verify(
	ctx context.Context,
	uow repository.UnitOfWork,
	email, password string,
) (*dto.UserRead, error) {
	repo, err := repository.Get[repouser.Repository](uow)
	if err != nil {
		return nil, err
	}
	normalized, ok := utils.NormalizeEmail(email)
	if !ok {
		_ = utils.CheckPasswordHash(password, dummyHash)
		return nil, user.ErrUserUnauthorized
	}
	u, err := repo.GetByEmail(ctx, normalized)
	if errors.Is(err, domain.ErrNotFound) {
		_ = utils.CheckPasswordHash(password, dummyHash)
		return nil, user.ErrUserUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		return nil, user.ErrUserUnauthorized
	}
	return u, nil
}

// JWTStrategy signs HS256 tokens carrying the user id and email.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger, now: time.Now}
}

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ClaimUserID: u.ID.String(),
		ClaimEmail:  u.Email,
		"iat":       now.Unix(),
		"exp":       now.Add(s.cfg.Expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	return signed, nil
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	email, password string,
) (*dto.UserRead, error) {
	return verify(ctx, s.uow, email, password)
}

// BasicAuthStrategy checks the password and issues nothing.
type BasicAuthStrategy struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func NewBasicAuthStrategy(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *BasicAuthStrategy {
	return &BasicAuthStrategy{uow: uow, logger: logger}
}

func (s *BasicAuthStrategy) Login(
	ctx context.Context,
	email, password string,
) (*dto.UserRead, error) {
	s.logger.Debug("BasicAuth Login called", "email", email)
	return verify(ctx, s.uow, email, password)
}

func (s *BasicAuthStrategy) GenerateToken(ctx context.Context, u *dto.UserRead) (string, error) {
	return "", nil
}
