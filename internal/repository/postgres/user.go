package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
)

const (
	userColumns = `id, email, name, created_at`

	countUsersQuery = `SELECT COUNT(*) FROM users`

	listUsersQuery = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	insertUserQuery = `
		INSERT INTO users (id, email, name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	getUserQuery = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	deleteUserQuery = `DELETE FROM users WHERE id = $1`

	deleteAllUsersQuery = `DELETE FROM users RETURNING ` + userColumns
)

// UserRepository реализует repository.UserRepository для PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository создает новый репозиторий пользователей
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Count возвращает общее число пользователей
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := getConn(ctx, r.pool).QueryRow(ctx, countUsersQuery).Scan(&count); err != nil {
		return 0, wrapErr("failed to count users", err)
	}
	return count, nil
}

// List возвращает страницу пользователей в порядке вставки
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, listUsersQuery, limit, offset)
	if err != nil {
		return nil, wrapErr("failed to list users", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.User])
	if err != nil {
		return nil, wrapErr("failed to scan users", err)
	}

	return users, nil
}

// Create создает нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := getConn(ctx, r.pool).Exec(ctx, insertUserQuery,
		user.ID,
		user.Email,
		user.Name,
		user.CreatedAt,
	)
	if err != nil {
		return wrapErr("failed to create user", err)
	}
	return nil
}

// CreateBatch создает пользователей пакетом одним обращением к базе
func (r *UserRepository) CreateBatch(ctx context.Context, users []*entity.User) error {
	batch := &pgx.Batch{}
	for _, user := range users {
		batch.Queue(insertUserQuery, user.ID, user.Email, user.Name, user.CreatedAt)
	}
	return sendBatch(ctx, getConn(ctx, r.pool), batch, "failed to create users")
}

// GetByID возвращает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, getUserQuery, id)
	if err != nil {
		return nil, wrapErr("failed to get user", err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[entity.User])
	if err != nil {
		return nil, wrapErr("failed to get user", err)
	}

	return user, nil
}

// DeleteByID удаляет пользователя, false если строки не было
func (r *UserRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := getConn(ctx, r.pool).Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return false, wrapErr("failed to delete user", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAll удаляет всех пользователей и возвращает удаленные строки
func (r *UserRepository) DeleteAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, deleteAllUsersQuery)
	if err != nil {
		return nil, wrapErr("failed to delete users", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.User])
	if err != nil {
		return nil, wrapErr("failed to delete users", err)
	}

	return users, nil
}
