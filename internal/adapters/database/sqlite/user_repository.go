package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/kbeautyshop/storefront_backend/internal/apperrors"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

type userRow struct {
	UserID        string       `db:"user_id"`
	Email         string       `db:"email"`
	Name          string       `db:"name"`
	PasswordHash  string       `db:"password_hash"`
	CreatedAt     sql.NullTime `db:"created_at"`
	LastUpdatedAt sql.NullTime `db:"last_updated_at"`
}

func (row userRow) toDomain() *domain.User {
	user := &domain.User{
		UserID:       row.UserID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
	}
	user.CreatedAt = row.CreatedAt.Time
	user.LastUpdatedAt = row.LastUpdatedAt.Time
	return user
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO users (user_id, email, name, password_hash, created_at, last_updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, user.UserID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.LastUpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT user_id, email, name, password_hash, created_at, last_updated_at FROM users WHERE user_id = ?`, userID)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT user_id, email, name, password_hash, created_at, last_updated_at FROM users WHERE email = ?`, email)
}

func (r *UserRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return row.toDomain(), nil
}
