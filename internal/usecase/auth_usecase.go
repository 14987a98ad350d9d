package usecase

import "context"

// AuthUsecase defines the interface for owner authentication operations.
// The tracker has a single owner; tokens carry no per-user identity beyond
// the fixed subject.
type AuthUsecase interface {
	// IssueTokens verifies the owner password and returns a token pair.
	IssueTokens(ctx context.Context, input *IssueTokensInput) (*TokenPairOutput, error)

	// RefreshTokens validates a refresh token and returns a fresh pair.
	RefreshTokens(ctx context.Context, input *RefreshTokensInput) (*TokenPairOutput, error)
}

// IssueTokensInput defines the data required to issue tokens.
type IssueTokensInput struct {
	Password string `json:"password" validate:"required"`
}

// RefreshTokensInput defines the data required to rotate tokens.
type RefreshTokensInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenPairOutput carries a freshly issued access and refresh token.
type TokenPairOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
