package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/networth/infra"
	"github.com/amirasaad/networth/internal/fixtures/mocks"
	"github.com/amirasaad/networth/internal/testdb"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/domain/user"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	repouser "github.com/amirasaad/networth/pkg/repository/user"
	authsvc "github.com/amirasaad/networth/pkg/service/auth"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passwordHash is a bcrypt hash of "password".
const passwordHash = "$2a$10$.IIxpSc3OElWXLV2Wj517eUGmZ64IQgBNQ4OcFbanW85CTrgrIDQy"

var jwtConfig = &config.Jwt{Secret: "test-secret", Expiry: time.Hour}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededUoW(t *testing.T) (repository.UnitOfWork, uuid.UUID) {
	t.Helper()
	uow := infra.NewUoW(testdb.Open(t, infra.Models()...))
	users, err := repository.Get[repouser.Repository](uow)
	require.NoError(t, err)
	id := uuid.New()
	require.NoError(t, users.Create(context.Background(), &dto.UserCreate{
		ID: id, Email: "bob@example.com", Password: passwordHash,
	}))
	return uow, id
}

func TestLogin(t *testing.T) {
	uow, id := seededUoW(t)
	svc := authsvc.NewWithJWT(uow, jwtConfig, discardLogger())
	ctx := context.Background()

	u, err := svc.Login(ctx, "  Bob@Example.com ", "password")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = svc.Login(ctx, "bob@example.com", "wrong")
	assert.ErrorIs(t, err, user.ErrUserUnauthorized)

	_, err = svc.Login(ctx, "nobody@example.com", "password")
	assert.ErrorIs(t, err, user.ErrUserUnauthorized)

	_, err = svc.Login(ctx, "not an email", "password")
	assert.ErrorIs(t, err, user.ErrUserUnauthorized)
}

func TestBasicLoginIssuesNoToken(t *testing.T) {
	uow, _ := seededUoW(t)
	svc := authsvc.NewWithBasic(uow, discardLogger())
	ctx := context.Background()

	u, err := svc.Login(ctx, "bob@example.com", "password")
	require.NoError(t, err)
	token, err := svc.GenerateToken(ctx, u)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLogin_RepositoryError(t *testing.T) {
	uow := mocks.NewUnitOfWork(t)
	users := &mocks.UserRepository{}
	users.Test(t)
	uow.On("GetRepository", mocks.RepoType[repouser.Repository]()).Return(users, nil)
	users.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, errors.New("connection reset"))

	svc := authsvc.NewWithJWT(uow, jwtConfig, discardLogger())
	_, err := svc.Login(context.Background(), "bob@example.com", "password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrUserUnauthorized)
	users.AssertExpectations(t)
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	svc := authsvc.NewWithJWT(nil, jwtConfig, discardLogger())
	u := &dto.UserRead{ID: uuid.New(), Email: "bob@example.com"}

	signed, err := svc.GenerateToken(context.Background(), u)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte(jwtConfig.Secret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims[authsvc.ClaimUserID])
	assert.Equal(t, "bob@example.com", claims[authsvc.ClaimEmail])

	sess, err := authsvc.SessionFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.Session{UserID: u.ID, Email: u.Email}, sess)
}

func TestSessionFromToken(t *testing.T) {
	tests := []struct {
		name  string
		token *jwt.Token
	}{
		{name: "nil token", token: nil},
		{name: "unverified", token: &jwt.Token{Claims: jwt.MapClaims{
			authsvc.ClaimUserID: uuid.NewString(), authsvc.ClaimEmail: "a@b.com",
		}}},
		{name: "bad user id", token: &jwt.Token{Valid: true, Claims: jwt.MapClaims{
			authsvc.ClaimUserID: "nope", authsvc.ClaimEmail: "a@b.com",
		}}},
		{name: "missing email", token: &jwt.Token{Valid: true, Claims: jwt.MapClaims{
			authsvc.ClaimUserID: uuid.NewString(),
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authsvc.SessionFromToken(tt.token)
			assert.ErrorIs(t, err, session.ErrNoSession)
		})
	}
}
