package impl

import (
	"context"
	"testing"

	domainerrors "vita/internal/domain/errors"
	mockSvc "vita/internal/mocks/service"
	"vita/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_IssueTokens(t *testing.T) {
	mockTokens := mockSvc.NewMockTokenService(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	service := NewAuthService(mockTokens, mockHasher, "stored-hash", discardLogger())

	mockHasher.EXPECT().
		Check("owner-password", "stored-hash").
		Return(true)

	mockTokens.EXPECT().
		GenerateTokens().
		Return("access", "refresh", nil)

	pair, err := service.IssueTokens(context.Background(), &usecase.IssueTokensInput{Password: "owner-password"})
	require.NoError(t, err)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
}

func TestAuthService_IssueTokens_WrongPassword(t *testing.T) {
	mockTokens := mockSvc.NewMockTokenService(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	service := NewAuthService(mockTokens, mockHasher, "stored-hash", discardLogger())

	mockHasher.EXPECT().
		Check("wrong", "stored-hash").
		Return(false)

	_, err := service.IssueTokens(context.Background(), &usecase.IssueTokensInput{Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RefreshTokens(t *testing.T) {
	mockTokens := mockSvc.NewMockTokenService(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	service := NewAuthService(mockTokens, mockHasher, "stored-hash", discardLogger())

	mockTokens.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(nil, nil)

	mockTokens.EXPECT().
		GenerateTokens().
		Return("new-access", "new-refresh", nil)

	pair, err := service.RefreshTokens(context.Background(), &usecase.RefreshTokensInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
}

func TestAuthService_RefreshTokens_Invalid(t *testing.T) {
	mockTokens := mockSvc.NewMockTokenService(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	service := NewAuthService(mockTokens, mockHasher, "stored-hash", discardLogger())

	mockTokens.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := service.RefreshTokens(context.Background(), &usecase.RefreshTokensInput{RefreshToken: "garbage"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}
