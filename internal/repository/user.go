package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sharenotes/sharenotes-go/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

const userColumns = `user_id, name, email, password_hash, active_token, created_at, updated_at`

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID and timestamps on the user struct.
// A duplicate email is reported by the driver as a constraint violation.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (name, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`

	ts := now()
	result, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.PasswordHash, ts, ts)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	user.CreatedAt = ts
	user.UpdatedAt = ts
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, id)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*model.User, error) {
	user := &model.User{}
	if err := r.db.GetContext(ctx, user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SetActiveToken records token as the user's current session. An empty token clears it.
func (r *UserRepository) SetActiveToken(ctx context.Context, userID int64, token string) error {
	query := `UPDATE users SET active_token = ?, updated_at = ? WHERE user_id = ?`

	active := sql.NullString{String: token, Valid: token != ""}
	result, err := r.db.ExecContext(ctx, query, active, now(), userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
