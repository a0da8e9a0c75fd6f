package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
)

const (
	authUsersTable    = "auth_users"
	authUserColumns   = `id, email, name, password_hash, created_at`
	countAuthUsersSQL = `SELECT COUNT(*) FROM auth_users`

	listAuthUsersSQL = `
		SELECT ` + authUserColumns + `
		FROM auth_users
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	insertAuthUserSQL = `
		INSERT INTO auth_users (id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	getAuthUserSQL       = `SELECT ` + authUserColumns + ` FROM auth_users WHERE id = $1`
	deleteAuthUserSQL    = `DELETE FROM auth_users WHERE id = $1`
	deleteAllAuthUserSQL = `DELETE FROM auth_users RETURNING ` + authUserColumns
)

var authUserCopyColumns = []string{"id", "email", "name", "password_hash", "created_at"}

// AuthUserRepository реализует repository.AuthUserRepository для PostgreSQL
type AuthUserRepository struct {
	pool *pgxpool.Pool
}

// NewAuthUserRepository создает новый репозиторий учетных записей
func NewAuthUserRepository(pool *pgxpool.Pool) *AuthUserRepository {
	return &AuthUserRepository{pool: pool}
}

// Count возвращает общее число учетных записей
func (r *AuthUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := getConn(ctx, r.pool).QueryRow(ctx, countAuthUsersSQL).Scan(&count); err != nil {
		return 0, wrapErr("failed to count auth users", err)
	}
	return count, nil
}

// List возвращает страницу учетных записей
func (r *AuthUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.AuthUser, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, listAuthUsersSQL, limit, offset)
	if err != nil {
		return nil, wrapErr("failed to list auth users", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.AuthUser])
	if err != nil {
		return nil, wrapErr("failed to scan auth users", err)
	}

	return users, nil
}

// Create создает учетную запись
func (r *AuthUserRepository) Create(ctx context.Context, user *entity.AuthUser) error {
	_, err := getConn(ctx, r.pool).Exec(ctx, insertAuthUserSQL,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		return wrapErr("failed to create auth user", err)
	}
	return nil
}

// CreateBatch создает учетные записи пакетом
func (r *AuthUserRepository) CreateBatch(ctx context.Context, users []*entity.AuthUser) error {
	batch := &pgx.Batch{}
	for _, u := range users {
		batch.Queue(insertAuthUserSQL, u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt)
	}
	return sendBatch(ctx, getConn(ctx, r.pool), batch, "failed to create auth users")
}

// GetByID возвращает учетную запись по ID
func (r *AuthUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, getAuthUserSQL, id)
	if err != nil {
		return nil, wrapErr("failed to get auth user", err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[entity.AuthUser])
	if err != nil {
		return nil, wrapErr("failed to get auth user", err)
	}

	return user, nil
}

// DeleteByID удаляет учетную запись, false если строки не было
func (r *AuthUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := getConn(ctx, r.pool).Exec(ctx, deleteAuthUserSQL, id)
	if err != nil {
		return false, wrapErr("failed to delete auth user", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAll удаляет все учетные записи и возвращает их полностью, включая хеш пароля
func (r *AuthUserRepository) DeleteAll(ctx context.Context) ([]*entity.AuthUser, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, deleteAllAuthUserSQL)
	if err != nil {
		return nil, wrapErr("failed to delete auth users", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.AuthUser])
	if err != nil {
		return nil, wrapErr("failed to delete auth users", err)
	}

	return users, nil
}

// Restore возвращает удаленные записи через COPY с исходными id и created_at
func (r *AuthUserRepository) Restore(ctx context.Context, users []*entity.AuthUser) error {
	if len(users) == 0 {
		return nil
	}

	source := pgx.CopyFromSlice(len(users), func(i int) ([]any, error) {
		u := users[i]
		return []any{u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt}, nil
	})

	if _, err := getConn(ctx, r.pool).CopyFrom(ctx, pgx.Identifier{authUsersTable}, authUserCopyColumns, source); err != nil {
		return wrapErr("failed to restore auth users", err)
	}

	return nil
}
