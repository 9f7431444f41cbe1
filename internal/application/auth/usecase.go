// Package auth contiene el caso de uso de autenticación del personal.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/repository"
	"github.com/EdgarCaloch00/CrepePosApi/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Credenciales inválidas devuelven domain.ErrUnauthorized sin distinguir
// entre usuario inexistente y contraseña incorrecta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	branchID := ""
	if user.BranchID != nil {
		branchID = *user.BranchID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, branchID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
		BranchID: user.BranchID,
	}
}
