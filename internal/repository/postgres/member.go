package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
)

const (
	memberColumns = `id, team_id, user_id, name, identity_num, role, assigned_at, expired_at, modification_date`

	insertMemberSQL = `
		INSERT INTO members (id, team_id, user_id, name, identity_num, role, assigned_at, expired_at, modification_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	memberEmailsSQL = `
		SELECT m.name, a.email
		FROM members m
		JOIN auth_users a ON a.id = m.user_id
		WHERE m.team_id = $1
		ORDER BY m.assigned_at, m.id
	`

	memberInfosSQL = `
		SELECT m.name, a.email, m.identity_num, m.role
		FROM members m
		JOIN auth_users a ON a.id = m.user_id
		WHERE m.team_id = $1
		ORDER BY m.assigned_at, m.id
	`

	memberNamesSQL = `
		SELECT name
		FROM members
		WHERE team_id = $1
		ORDER BY assigned_at, id
	`
)

// MemberRepository реализует repository.MemberRepository для PostgreSQL
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository создает новый репозиторий участников
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// Count возвращает общее число участников
func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := getConn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM members`).Scan(&count); err != nil {
		return 0, wrapErr("failed to count members", err)
	}
	return count, nil
}

// List возвращает страницу участников в порядке назначения
func (r *MemberRepository) List(ctx context.Context, limit, offset int) ([]*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY assigned_at, id LIMIT $1 OFFSET $2`

	rows, err := getConn(ctx, r.pool).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr("failed to list members", err)
	}

	members, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.Member])
	if err != nil {
		return nil, wrapErr("failed to scan members", err)
	}

	return members, nil
}

// Create создает участника
func (r *MemberRepository) Create(ctx context.Context, m *entity.Member) error {
	_, err := getConn(ctx, r.pool).Exec(ctx, insertMemberSQL, memberArgs(m)...)
	if err != nil {
		return wrapErr("failed to create member", err)
	}
	return nil
}

// CreateBatch создает участников пакетом
func (r *MemberRepository) CreateBatch(ctx context.Context, members []*entity.Member) error {
	batch := &pgx.Batch{}
	for _, m := range members {
		batch.Queue(insertMemberSQL, memberArgs(m)...)
	}
	return sendBatch(ctx, getConn(ctx, r.pool), batch, "failed to create members")
}

// GetByID возвращает участника по ID
func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
	if err != nil {
		return nil, wrapErr("failed to get member", err)
	}

	member, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[entity.Member])
	if err != nil {
		return nil, wrapErr("failed to get member", err)
	}

	return member, nil
}

// DeleteByID удаляет участника, false если строки не было
func (r *MemberRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := getConn(ctx, r.pool).Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("failed to delete member", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAll удаляет всех участников и возвращает удаленные строки
func (r *MemberRepository) DeleteAll(ctx context.Context) ([]*entity.Member, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, `DELETE FROM members RETURNING `+memberColumns)
	if err != nil {
		return nil, wrapErr("failed to delete members", err)
	}

	members, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.Member])
	if err != nil {
		return nil, wrapErr("failed to delete members", err)
	}

	return members, nil
}

// ListEmailsByTeam возвращает имена участников команды и почты их учетных записей
func (r *MemberRepository) ListEmailsByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberEmail, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, memberEmailsSQL, teamID)
	if err != nil {
		return nil, wrapErr("failed to list member emails", err)
	}

	result, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.MemberEmail])
	if err != nil {
		return nil, wrapErr("failed to scan member emails", err)
	}

	return result, nil
}

// ListInfosByTeam возвращает карточки участников команды
func (r *MemberRepository) ListInfosByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberInfo, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, memberInfosSQL, teamID)
	if err != nil {
		return nil, wrapErr("failed to list member infos", err)
	}

	result, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.MemberInfo])
	if err != nil {
		return nil, wrapErr("failed to scan member infos", err)
	}

	return result, nil
}

// ListNamesByTeam возвращает имена участников команды
func (r *MemberRepository) ListNamesByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberName, error) {
	rows, err := getConn(ctx, r.pool).Query(ctx, memberNamesSQL, teamID)
	if err != nil {
		return nil, wrapErr("failed to list member names", err)
	}

	result, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.MemberName])
	if err != nil {
		return nil, wrapErr("failed to scan member names", err)
	}

	return result, nil
}

func memberArgs(m *entity.Member) []any {
	return []any{
		m.ID,
		m.TeamID,
		m.UserID,
		m.Name,
		m.IdentityNum,
		m.Role,
		m.AssignedAt,
		m.ExpiredAt,
		m.ModificationDate,
	}
}
