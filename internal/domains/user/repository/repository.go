package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/internal/domains/user/model"
	"safar/shared/constant"
)

var ErrNotFound = errors.New("user not found")

type User interface {
	Insert(ctx context.Context, user model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string, lastLogin time.Time) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, user model.User) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		INSERT INTO users (id, email, password, full_name, role, active, created_at, updated_at)
		VALUES (:id, :email, :password, :full_name, :role, :active, :created_at, :updated_at)`

	if _, err = repo.db.Write.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetByEmail(ctx context.Context, email string) (user model.User, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetUserByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT id, email, password, full_name, role, last_login, active, created_at, updated_at
		FROM users
		WHERE email = $1`

	if err = repo.db.Read.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (repo *repositoryImpl) ExistsByEmail(ctx context.Context, email string) (exists bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UserExistsByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	if err = repo.db.Read.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) UpdateLastLogin(ctx context.Context, id string, lastLogin time.Time) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateUserLastLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `UPDATE users SET last_login = $1, updated_at = $1 WHERE id = $2`

	if _, err = repo.db.Write.ExecContext(ctx, query, lastLogin, id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}
