package impl

import (
	"context"
	"log/slog"

	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/service"
	"vita/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface for the single tracker
// owner. The owner password hash lives in configuration, not storage.
type authService struct {
	tokens       service.TokenService
	hasher       service.PasswordHasher
	passwordHash string
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	tokens service.TokenService,
	hasher service.PasswordHasher,
	passwordHash string,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		tokens:       tokens,
		hasher:       hasher,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// IssueTokens verifies the owner password and returns a token pair.
func (srv *authService) IssueTokens(_ context.Context, input *usecase.IssueTokensInput) (*usecase.TokenPairOutput, error) {
	if !srv.hasher.Check(input.Password, srv.passwordHash) {
		srv.logger.Warn("Rejected token request with wrong password")

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	accessToken, refreshToken, err := srv.tokens.GenerateTokens()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens validates a refresh token and returns a fresh pair.
func (srv *authService) RefreshTokens(_ context.Context, input *usecase.RefreshTokensInput) (*usecase.TokenPairOutput, error) {
	if _, err := srv.tokens.ValidateRefreshToken(input.RefreshToken); err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	accessToken, refreshToken, err := srv.tokens.GenerateTokens()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
