//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reqdto "repairbook/internal/handler/dto/request"
	"repairbook/internal/pkg/config"
	"repairbook/internal/pkg/jwt"
	"repairbook/internal/pkg/password"
	"repairbook/internal/usecase/commands"
)

func TestLogin(t *testing.T) {
	hash, err := password.Hash("sesame-open")
	require.NoError(t, err)

	jwtService := jwt.NewService("test-secret", time.Hour)
	cmd := commands.NewAuthCommands(config.AdminConfig{Login: "admin", PasswordHash: hash}, jwtService)

	t.Run("success: issues a validated admin token", func(t *testing.T) {
		result, err := cmd.Login(context.Background(), reqdto.LoginRequest{Login: "admin", Password: "sesame-open"})

		require.NoError(t, err)
		require.NotEmpty(t, result.AccessToken)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		_, err := cmd.Login(context.Background(), reqdto.LoginRequest{Login: "admin", Password: "guess"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: unknown login", func(t *testing.T) {
		_, err := cmd.Login(context.Background(), reqdto.LoginRequest{Login: "root", Password: "sesame-open"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
