package userrepo

import (
	"context"
	"fmt"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, login, email, password_hash, role, is_active, is_verified
		FROM users
		WHERE login = $1
	`
	err := repo.db.QueryRow(ctx, query, login).
		Scan(&user.ID, &user.Login, &user.Email, &user.PasswordHash, &user.Role, &user.IsActive, &user.IsVerified)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.Email, user.PasswordHash, user.Role).Scan(&user.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("login %q: %w", user.Login, pg.ErrUniqueViolation)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, login, email, role, is_active, is_verified, created_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Login, &user.Email, &user.Role, &user.IsActive, &user.IsVerified, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (repo *Repository) SetActive(ctx context.Context, userID int, isActive bool) error {
	query := `
		UPDATE users
		SET is_active = $1
		WHERE id = $2
	`
	tag, err := repo.db.Exec(ctx, query, isActive, userID)
	if err != nil {
		zap.L().Error("can't update user active flag", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (repo *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := repo.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}
