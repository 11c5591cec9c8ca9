package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taxdash/internal/db/models/postgres/public/model"
	. "taxdash/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"

	_ "github.com/lib/pq"
)

type UserRepository interface {
	Add(email, passwordHash string) (*model.User, error)
	Get(userID uuid.UUID) (*model.User, error)
	// GetByEmail returns (nil, nil) when no user exists with that email.
	GetByEmail(email string) (*model.User, error)
}

type userRepositoryHandler struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return userRepositoryHandler{
		DB: db,
	}
}

func (h userRepositoryHandler) Add(email, passwordHash string) (*model.User, error) {
	user := model.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	query := User.INSERT(User.AllColumns).
		MODEL(user).
		RETURNING(User.AllColumns)

	out := &model.User{}
	err := query.Query(h.DB, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user %s: %w", email, err)
	}

	return out, nil
}

func (h userRepositoryHandler) Get(userID uuid.UUID) (*model.User, error) {
	query := User.SELECT(User.AllColumns).
		WHERE(
			User.UserID.EQ(postgres.UUID(userID)),
		)

	user := &model.User{}
	err := query.Query(h.DB, user)
	if err != nil {
		return nil, fmt.Errorf("failed to query user id %s: %w", userID.String(), err)
	}

	return user, nil
}

func (h userRepositoryHandler) GetByEmail(email string) (*model.User, error) {
	query := User.SELECT(User.AllColumns).
		WHERE(
			User.Email.EQ(postgres.String(email)),
		)

	user := &model.User{}
	err := query.Query(h.DB, user)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	return user, nil
}
