//go:build e2e

package helper

import (
	"testing"
	"time"

	"parkspace/internal/domain/user"
	"parkspace/internal/pkg/config"
	"parkspace/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints access tokens directly so tests for protected endpoints
// do not have to go through the login flow first.
type JWTTestHelper struct {
	service *jwt.Service
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		duration = 24 * time.Hour
	}
	return &JWTTestHelper{service: jwt.NewService(cfg.Secret, duration)}
}

func (h *JWTTestHelper) TokenFor(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := h.service.GenerateToken(userID, role)
	require.NoError(t, err, "failed to generate test token")
	return token
}
