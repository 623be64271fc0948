// Package auth resolves the authenticated principal from a verified JWT.
// Token issuance (login, signup, session management) belongs to the external
// identity provider; this service only reads identity out of tokens the
// middleware has already verified.
package auth

import (
	"log/slog"

	"github.com/courtside/ledger/pkg/domain/ledger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service extracts principal identity from verified tokens.
type Service struct {
	logger *slog.Logger
}

// New creates an auth service.
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// GetCurrentUserID returns the principal id carried in the token's user_id
// claim. A missing or malformed claim yields ledger.ErrUnauthorized; the
// failure is logged at info level since unauthenticated traffic is expected,
// not exceptional.
func (s *Service) GetCurrentUserID(
	token *jwt.Token,
) (userID uuid.UUID, err error) {
	log := s.logger.With("context", "GetCurrentUserID")
	if token == nil {
		log.Info("GetCurrentUserID failed: nil token")
		err = ledger.ErrUnauthorized
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		log.Info("GetCurrentUserID failed: unexpected claims type")
		err = ledger.ErrUnauthorized
		return
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		log.Info("GetCurrentUserID failed: missing user_id claim")
		err = ledger.ErrUnauthorized
		return
	}
	userID, err = uuid.Parse(raw)
	if err != nil {
		log.Info("GetCurrentUserID failed: user_id is not a UUID", "error", err)
		err = ledger.ErrUnauthorized
		return
	}
	return
}
