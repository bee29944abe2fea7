package user

import (
	"context"
	"errors"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/user"
	"registration/internal/db/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "users_email_key"

type PgxUserRepository struct {
	queries *queries.Queries
}

func NewPgxRepository(db queries.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{queries: queries.New(db)}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	dbuser, err := r.queries.CreateUser(ctx, queries.CreateUserParams{
		ID:                  encodeID(uuid.New()),
		Email:               input.Email.String(),
		PasswordHash:        string(input.PasswordHash),
		ActivationCode:      string(input.ActivationCode),
		ActivationExpiresAt: input.ActivationExpiresAt,
		CreatedAt:           input.CreatedAt,
	})

	var errEmailUniqueConstraint *pgconn.PgError
	if errors.As(err, &errEmailUniqueConstraint) {
		if errEmailUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			errEmailUniqueConstraint.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, &user.EmailAlreadyExistsError{Email: input.Email}
		}
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbuser)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	dbuser, err := r.queries.GetUserByEmail(ctx, email.String())
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbuser)
}

func (r *PgxUserRepository) Activate(ctx context.Context, id user.ID) (u user.User, err error) {
	dbuser, err := r.queries.ActivateUser(ctx, encodeID(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbuser)
}

func encodeID(id user.ID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Status: pgtype.Present}
}

func decodeUser(dbuser queries.User) (u user.User, err error) {
	if dbuser.ID.Status != pgtype.Present {
		return u, e.NewInvalidStateError("user id is null")
	}
	u = user.User{
		ID:                  user.ID(dbuser.ID.Bytes),
		Email:               c.Email(dbuser.Email),
		PasswordHash:        user.PasswordHash(dbuser.PasswordHash),
		IsActive:            dbuser.IsActive,
		ActivationCode:      user.ActivationCode(dbuser.ActivationCode),
		ActivationExpiresAt: dbuser.ActivationExpiresAt,
		CreatedAt:           dbuser.CreatedAt,
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}
