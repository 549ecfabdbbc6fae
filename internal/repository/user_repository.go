package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/user-auth-service/internal/model"
)

// UserRepository is the storage contract consumed by the auth service.
// Implementations must treat email as a unique key.
type UserRepository interface {
	// Create inserts a new user and returns the stored record.
	// Returns ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, email, passwordHash, name string) (model.User, error)
	// GetByEmail fetches a user by normalized email.
	// Returns ErrNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// UserRepo is the MySQL implementation of UserRepository.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// mysqlDupEntry is the MySQL error number for a unique index violation.
const mysqlDupEntry = 1062

// Create inserts a user row. The unique index on users.email decides
// races between concurrent registrations; the loser gets ErrEmailTaken.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash, name string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, name) VALUES (?,?,?)",
		email, passwordHash, nullable(name))
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return model.User{}, ErrEmailTaken
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	now := time.Now().UTC()
	return model.User{
		ID:           uint64(id),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var (
		u    model.User
		name sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,name,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &name, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.Name = name.String
	return u, nil
}

// nullable maps an empty string to NULL so optional columns stay NULL
// instead of storing "".
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
