package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
)

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository создает новый репозиторий команд
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// Count возвращает общее число команд
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	conn := getConn(ctx, r.pool)

	var count int64
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count); err != nil {
		return 0, wrapErr("failed to count teams", err)
	}

	return count, nil
}

// List возвращает страницу команд
func (r *TeamRepository) List(ctx context.Context, limit, offset int) ([]*entity.Team, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT id, name, description, created_at
		FROM teams
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	rows, err := conn.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr("failed to list teams", err)
	}

	teams, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.Team])
	if err != nil {
		return nil, wrapErr("failed to scan teams", err)
	}

	return teams, nil
}

// Create создает новую команду
func (r *TeamRepository) Create(ctx context.Context, team *entity.Team) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO teams (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := conn.Exec(ctx, query, team.ID, team.Name, team.Description, team.CreatedAt)
	if err != nil {
		return wrapErr("failed to create team", err)
	}

	return nil
}

// CreateBatch создает команды через COPY; id уже сгенерированы сервисом
func (r *TeamRepository) CreateBatch(ctx context.Context, teams []*entity.Team) error {
	if len(teams) == 0 {
		return nil
	}

	conn := getConn(ctx, r.pool)

	_, err := conn.CopyFrom(ctx,
		pgx.Identifier{"teams"},
		[]string{"id", "name", "description", "created_at"},
		pgx.CopyFromSlice(len(teams), func(i int) ([]any, error) {
			t := teams[i]
			return []any{t.ID, t.Name, t.Description, t.CreatedAt}, nil
		}),
	)
	if err != nil {
		return wrapErr("failed to create teams", err)
	}

	return nil
}

// GetByID возвращает команду по ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT id, name, description, created_at
		FROM teams
		WHERE id = $1
	`

	var team entity.Team
	err := conn.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.CreatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to get team", err)
	}

	return &team, nil
}

// DeleteByID удаляет команду вместе с ее участниками
func (r *TeamRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	conn := getConn(ctx, r.pool)

	tag, err := conn.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("failed to delete team", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteAll удаляет все команды и возвращает удаленные строки
func (r *TeamRepository) DeleteAll(ctx context.Context) ([]*entity.Team, error) {
	conn := getConn(ctx, r.pool)

	rows, err := conn.Query(ctx, `DELETE FROM teams RETURNING id, name, description, created_at`)
	if err != nil {
		return nil, wrapErr("failed to delete teams", err)
	}

	teams, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.Team])
	if err != nil {
		return nil, wrapErr("failed to delete teams", err)
	}

	return teams, nil
}
