package account

import (
	"context"

	"github.com/BruksfildServices01/connect-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	"github.com/BruksfildServices01/connect-marketplace/internal/observability/metrics"
	"github.com/BruksfildServices01/connect-marketplace/internal/validators"
)

const MsgBadCredentials = "No active account found with the given credentials"

type LoginResult struct {
	Tokens auth.TokenPair
	User   *models.User
}

type Login struct {
	repo   domain.Repository
	hasher auth.PasswordHasher
	tokens *auth.TokenIssuer
}

func NewLogin(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	tokens *auth.TokenIssuer,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Execute checks email + password and issues an access/refresh pair.
// Unknown email, wrong password and inactive accounts fail identically.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*LoginResult, error) {

	user, err := uc.repo.GetUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if httperr.IsNotFound(err) {
			metrics.ObserveLogin("failure")
			return nil, httperr.ErrAuthentication(MsgBadCredentials)
		}
		return nil, err
	}

	if !user.IsActive || !uc.hasher.Verify(user.PasswordHash, password) {
		metrics.ObserveLogin("failure")
		return nil, httperr.ErrAuthentication(MsgBadCredentials)
	}

	pair, err := uc.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	metrics.ObserveLogin("success")
	return &LoginResult{Tokens: pair, User: user}, nil
}

type RefreshAccess struct {
	tokens *auth.TokenIssuer
}

func NewRefreshAccess(tokens *auth.TokenIssuer) *RefreshAccess {
	return &RefreshAccess{tokens: tokens}
}

// Execute trades a refresh token for a new access token. The user record
// is not consulted and the refresh token is not rotated.
func (uc *RefreshAccess) Execute(refreshToken string) (string, error) {
	return uc.tokens.Refresh(refreshToken)
}
