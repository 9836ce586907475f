package usecase

import (
	"context"
	"errors"
	"fmt"

	jwtpkg "github.com/fleetline/dispatch/internal/pkg/jwt"
	"github.com/fleetline/dispatch/internal/pkg/logger"
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/services/dispatch"
)

// Login authenticates a user by email and password and issues a bearer
// token. Which of the two fields was wrong is never revealed.
func (u *DispatchUC) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := u.repo.GetUserByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, dispatch.ErrNotFound) {
			return nil, dispatch.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, _, err := jwtpkg.GenerateToken(user.ID, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if _, err := u.repo.AppendActivity(ctx, fmt.Sprintf("User %s (%s) logged in", user.Name, user.Role)); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)))

	return &models.AuthResponse{
		Token: token,
		User:  user.Identity(),
	}, nil
}

// ResolveCaller resolves a verified token's user id to a current caller
// identity. A stale token for a removed user does not authenticate.
func (u *DispatchUC) ResolveCaller(ctx context.Context, userID string) (*models.CallerIdentity, error) {
	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}
	return user.Identity(), nil
}
