package queries

import (
	"context"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type User struct {
	ID                  pgtype.UUID
	Email               string
	PasswordHash        string
	IsActive            bool
	ActivationCode      string
	ActivationExpiresAt time.Time
	CreatedAt           time.Time
}

const userColumns = `id, email, password_hash, is_active, activation_code, activation_expires_at, created_at`

func scanUser(row pgx.Row) (u User, err error) {
	err = row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.IsActive,
		&u.ActivationCode,
		&u.ActivationExpiresAt,
		&u.CreatedAt,
	)
	return u, err
}

const createUser = `
INSERT INTO users (id, email, password_hash, is_active, activation_code, activation_expires_at, created_at)
VALUES ($1, $2, $3, FALSE, $4, $5, $6)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID                  pgtype.UUID
	Email               string
	PasswordHash        string
	ActivationCode      string
	ActivationExpiresAt time.Time
	CreatedAt           time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(
		ctx,
		createUser,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.ActivationCode,
		arg.ActivationExpiresAt,
		arg.CreatedAt,
	)
	return scanUser(row)
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByEmail, email))
}

const activateUser = `UPDATE users SET is_active = TRUE WHERE id = $1 RETURNING ` + userColumns

func (q *Queries) ActivateUser(ctx context.Context, id pgtype.UUID) (User, error) {
	return scanUser(q.db.QueryRow(ctx, activateUser, id))
}
