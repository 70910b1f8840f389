package repository

import (
	"context"
	"errors"
	"fmt"

	"site-admin/internal/data/entity"
	"site-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UserFilter narrows user listings. The zero value lists everyone.
type UserFilter struct {
	Search string
}

// Predicate returns the WHERE clause for f, always excluding deleted users.
func (f UserFilter) Predicate() Predicate {
	return And(IsNull("deleted_at"), SearchUsers(f.Search))
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAll(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, filter UserFilter) (int64, error)
	EmailTaken(ctx context.Context, email string, exceptID uuid.UUID) (bool, error)
	PhoneTaken(ctx context.Context, phone string, exceptID uuid.UUID) (bool, error)
	Update(ctx context.Context, user *entity.User) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, name, email, phone, password, roles, is_banned, created_at, updated_at, deleted_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		user  entity.User
		roles []string
	)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&roles,
		&user.IsBanned,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Roles = entity.ParseRoles(roles)
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, password, roles, is_banned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.RoleNames(),
		user.IsBanned,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if dupErr := duplicateUserError(err); dupErr != nil {
			return dupErr
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

// FindByID returns nil, nil when the user does not exist or is deleted.
func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

// FindAll retrieves one page of users matching filter, oldest first.
func (ur *userRepository) FindAll(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, error) {
	where, args := Where(filter.Predicate())
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE %s ORDER BY created_at ASC, id ASC LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := ur.db.Query(ctx, query, args...)
	if err != nil {
		ur.log.Error("Failed to list users",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find users limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) Count(ctx context.Context, filter UserFilter) (int64, error) {
	where, args := Where(filter.Predicate())
	query := `SELECT COUNT(*) FROM users WHERE ` + where

	var count int64
	if err := ur.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		ur.log.Error("Database error counting users",
			zap.Error(err),
			zap.String("search", filter.Search),
		)
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

// EmailTaken reports whether another live user already uses email,
// compared case-insensitively.
func (ur *userRepository) EmailTaken(ctx context.Context, email string, exceptID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE LOWER(email) = LOWER($1) AND id <> $2 AND deleted_at IS NULL
		)
	`

	var taken bool
	if err := ur.db.QueryRow(ctx, query, email, exceptID).Scan(&taken); err != nil {
		ur.log.Error("Failed to check email uniqueness", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("check email %s: %w", email, err)
	}
	return taken, nil
}

// PhoneTaken reports whether another live user already uses phone.
func (ur *userRepository) PhoneTaken(ctx context.Context, phone string, exceptID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE phone = $1 AND id <> $2 AND deleted_at IS NULL
		)
	`

	var taken bool
	if err := ur.db.QueryRow(ctx, query, phone, exceptID).Scan(&taken); err != nil {
		ur.log.Error("Failed to check phone uniqueness", zap.Error(err), zap.String("phone", phone))
		return false, fmt.Errorf("check phone %s: %w", phone, err)
	}
	return taken, nil
}

// Update writes every mutable column of user in one statement.
func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, roles = $5, is_banned = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.RoleNames(),
		user.IsBanned,
		user.UpdatedAt,
	)
	if err != nil {
		if dupErr := duplicateUserError(err); dupErr != nil {
			ur.log.Warn("Unique index rejected user update",
				zap.Error(err),
				zap.String("user_id", user.ID.String()),
			)
			return dupErr
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update user %s: %w", user.ID.String(), ErrNotFound)
	}

	return nil
}

func duplicateUserError(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}
	switch constraint {
	case "users_email_key":
		return ErrDuplicateEmail
	case "users_phone_key":
		return ErrDuplicatePhone
	}
	return nil
}
