package commands

import (
	"context"

	reqdto "repairbook/internal/handler/dto/request"
	"repairbook/internal/pkg/config"
	"repairbook/internal/pkg/errs"
	"repairbook/internal/pkg/jwt"
	"repairbook/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AccessToken string
}

// AuthCommands authenticates the single back-office operator. There is
// no user table; the credential lives in configuration as a bcrypt
// hash.
type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{admin: admin, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(_ context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	if req.Login != a.admin.Login || !password.Verify(a.admin.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(req.Login, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{AccessToken: token}, nil
}
