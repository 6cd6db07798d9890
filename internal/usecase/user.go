package usecase

import (
	"context"
	"errors"

	"tour-booking-api/internal/domain/adminlog"
	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/password"
	"tour-booking-api/internal/usecase/readmodel"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSelfDelete = errors.New("cannot delete your own account")

type UserListFilters struct {
	shared.PageParams
	Search string
}

type AdminUserRepository interface {
	List(ctx context.Context, filters UserListFilters) (shared.Page[readmodel.AuthorizedUserRM], error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error)
	Update(ctx context.Context, id uuid.UUID, name user.Name, email user.Email, phone *string, role user.Role, status user.Status) (*readmodel.AuthorizedUserRM, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AdminUserInput struct {
	Name     string
	Email    string
	Phone    *string
	Password string
	Role     string
	Status   string
}

type UserUseCase interface {
	List(ctx context.Context, filters UserListFilters) (shared.Page[readmodel.AuthorizedUserRM], error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	Create(ctx context.Context, input AdminUserInput, actorID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	Update(ctx context.Context, id uuid.UUID, input AdminUserInput, actorID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	ResetPassword(ctx context.Context, id uuid.UUID, newPassword string, actorID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

type userUseCaseImpl struct {
	userRepo     AdminUserRepository
	adminLogRepo AdminLogRepository
}

func NewUserUseCase(userRepo AdminUserRepository, adminLogRepo AdminLogRepository) UserUseCase {
	return &userUseCaseImpl{
		userRepo:     userRepo,
		adminLogRepo: adminLogRepo,
	}
}

func (u *userUseCaseImpl) List(ctx context.Context, filters UserListFilters) (shared.Page[readmodel.AuthorizedUserRM], error) {
	filters.PageParams = filters.Normalize()
	return u.userRepo.List(ctx, filters)
}

func (u *userUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (u *userUseCaseImpl) Create(ctx context.Context, input AdminUserInput, actorID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	name, err := user.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	pass, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, err
	}

	created, err := u.userRepo.Create(ctx, user.NewUser(name, email, input.Phone, hash, role))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionCreate, "user", &created.ID, nil, created)
	return created, nil
}

func (u *userUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input AdminUserInput, actorID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name, err := user.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(input.Role)
	if err != nil {
		return nil, err
	}
	status, err := user.NewStatus(input.Status)
	if err != nil {
		return nil, err
	}

	updated, err := u.userRepo.Update(ctx, id, name, email, input.Phone, role, status)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyExists
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionUpdate, "user", &id, existing, updated)
	return updated, nil
}

func (u *userUseCaseImpl) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string, actorID uuid.UUID) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}

	pass, err := user.NewPassword(newPassword)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return err
	}

	if err := u.userRepo.UpdatePassword(ctx, id, hash); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionResetPassword, "user", &id, nil, nil)
	return nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	if id == actorID {
		return ErrSelfDelete
	}

	existing, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionDelete, "user", &id, existing, nil)
	return nil
}
