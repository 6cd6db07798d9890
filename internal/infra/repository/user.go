package repository

import (
	"context"
	"strconv"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/readmodel"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, phone, role, status, last_login_at, created_at, updated_at`

const (
	findUserByEmailSQL = `SELECT ` + userColumns + `, password_hash FROM users WHERE email = $1`

	findUserByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	updateLastLoginSQL = `UPDATE users SET last_login_at = now() WHERE id = $1`

	insertUserSQL = `INSERT INTO users (id, name, email, phone, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	updateUserSQL = `UPDATE users SET name = $2, email = $3, phone = $4, role = $5,
		status = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	updateUserPasswordSQL = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	deleteUserSQL = `DELETE FROM users WHERE id = $1`
)

var (
	_ usecase.AuthUserRepository  = (*UserRepository)(nil)
	_ usecase.AdminUserRepository = (*UserRepository)(nil)
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	var (
		rm   readmodel.AuthorizedUserRM
		hash string
	)
	err := r.pool.QueryRow(ctx, findUserByEmailSQL, email.Value()).Scan(
		&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.Role, &rm.Status,
		&rm.LastLoginAt, &rm.CreatedAt, &rm.UpdatedAt, &hash,
	)
	if err != nil {
		return nil, "", wrapErr("finding user by email", err)
	}
	rm.IsActive = rm.Status == user.StatusActive.String()
	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rows, err := r.pool.Query(ctx, findUserByIDSQL, id)
	if err != nil {
		return nil, wrapErr("finding user by id", err)
	}
	rm, err := pgx.CollectExactlyOneRow(rows, scanUserRM)
	if err != nil {
		return nil, wrapErr("finding user by id", err)
	}
	return &rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return wrapErr("updating last login", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error) {
	rows, err := r.pool.Query(ctx, insertUserSQL,
		u.ID(), u.Name().Value(), u.Email().Value(), u.Phone(),
		u.PasswordHash(), u.Role().String(), u.Status().String(),
	)
	if err != nil {
		return nil, wrapErr("creating user", err)
	}
	rm, err := pgx.CollectExactlyOneRow(rows, scanUserRM)
	if err != nil {
		return nil, wrapErr("creating user", err)
	}
	return &rm, nil
}

func (r *UserRepository) List(ctx context.Context, filters usecase.UserListFilters) (shared.Page[readmodel.AuthorizedUserRM], error) {
	where := ""
	args := []any{}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where = " WHERE (name ILIKE $1 OR email ILIKE $1)"
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM users"+where, args...).Scan(&total); err != nil {
		return shared.Page[readmodel.AuthorizedUserRM]{}, wrapErr("counting users", err)
	}

	args = append(args, filters.Limit)
	limitArg := "$" + strconv.Itoa(len(args))
	args = append(args, filters.Offset())
	offsetArg := "$" + strconv.Itoa(len(args))

	query := "SELECT " + userColumns + " FROM users" + where +
		" ORDER BY created_at DESC LIMIT " + limitArg + " OFFSET " + offsetArg

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return shared.Page[readmodel.AuthorizedUserRM]{}, wrapErr("listing users", err)
	}
	items, err := pgx.CollectRows(rows, scanUserRM)
	if err != nil {
		return shared.Page[readmodel.AuthorizedUserRM]{}, wrapErr("listing users", err)
	}

	return shared.Page[readmodel.AuthorizedUserRM]{Items: items, Total: total, Page: filters.Page, Limit: filters.Limit}, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, name user.Name, email user.Email, phone *string, role user.Role, status user.Status) (*readmodel.AuthorizedUserRM, error) {
	rows, err := r.pool.Query(ctx, updateUserSQL,
		id, name.Value(), email.Value(), phone, role.String(), status.String(),
	)
	if err != nil {
		return nil, wrapErr("updating user", err)
	}
	rm, err := pgx.CollectExactlyOneRow(rows, scanUserRM)
	if err != nil {
		return nil, wrapErr("updating user", err)
	}
	return &rm, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, updateUserPasswordSQL, id, passwordHash)
	if err != nil {
		return wrapErr("updating user password", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("updating user password", pgx.ErrNoRows)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteUserSQL, id)
	if err != nil {
		return wrapErr("deleting user", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("deleting user", pgx.ErrNoRows)
	}
	return nil
}

func scanUserRM(row pgx.CollectableRow) (readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := row.Scan(
		&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.Role, &rm.Status,
		&rm.LastLoginAt, &rm.CreatedAt, &rm.UpdatedAt,
	)
	rm.IsActive = rm.Status == user.StatusActive.String()
	return rm, err
}
