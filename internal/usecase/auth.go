package usecase

import (
	"context"
	"errors"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/jwt"
	"tour-booking-api/internal/pkg/password"
	"tour-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type AuthUserRepository interface {
	Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error)
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    *string
	Password string
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (string, *readmodel.AuthorizedUserRM, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userRepo   AuthUserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo AuthUserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, input RegisterInput) (string, *readmodel.AuthorizedUserRM, error) {
	name, err := user.NewName(input.Name)
	if err != nil {
		return "", nil, err
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return "", nil, err
	}
	pass, err := user.NewPassword(input.Password)
	if err != nil {
		return "", nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return "", nil, err
	}

	newUser := user.NewUser(name, email, input.Phone, hash, user.RoleCustomer)

	created, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailAlreadyExists
		}
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(created.ID, user.RoleCustomer)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, created, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	userRM, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !userRM.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userRM.ID); err != nil {
		return "", nil, err
	}

	return token, userRM, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !userRM.IsActive {
		return nil, ErrUserInactive
	}

	return userRM, nil
}
