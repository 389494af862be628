package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/dataprecision/margindesk-sub001/internal/domain/user"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, person_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, role, person_id, is_active, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		uuid.NewString(), u.Email, u.PasswordHash, u.Role, u.PersonID, u.IsActive,
	).Scan(
		&created.ID, &created.Email, &created.PasswordHash, &created.Role,
		&created.PersonID, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_users_email") {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepository) getBy(ctx context.Context, column, value string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, role, person_id, is_active, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var u user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.PersonID, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}
