package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fieldreport-backend/internal/auth"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Unknown or expired tokens and deleted or inactive users
// yield ErrUnauthorized.
//
// A token that was already revoked by an earlier rotation means the chain
// leaked, so every session of that user is revoked before rejecting.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}
	if token.IsRevoked() {
		s.log.WarnContext(ctx, "revoked refresh token reused, revoking all sessions",
			slog.String("user_id", token.UserID.String()))
		if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke sessions: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}
	if !user.Active {
		return nil, domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
