package pg

import (
	"context"
	"database/sql"
	"errors"

	"sprintassign/internal/domain"
	"sprintassign/internal/domain/member"
)

const memberColumns = `member_id, display_name, email, team_name, is_active`

type MemberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) UpsertInTeam(ctx context.Context, teamName string, members []member.Member) error {
	for _, m := range members {
		if _, err := exec(ctx, r.db,
			`INSERT INTO members (member_id, display_name, email, team_name, is_active)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (member_id) DO UPDATE
			   SET display_name = EXCLUDED.display_name,
			       email = EXCLUDED.email,
			       team_name = EXCLUDED.team_name,
			       is_active = EXCLUDED.is_active`,
			m.ID, m.DisplayName, m.Email, teamName, m.IsActive,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemberRepository) SetActive(ctx context.Context, memberID string, isActive bool) (member.Member, error) {
	row := queryRow(ctx, r.db,
		`UPDATE members
		    SET is_active = $2
		  WHERE member_id = $1
		  RETURNING `+memberColumns,
		memberID, isActive,
	)
	return scanMemberRow(row)
}

// ListActive returns every active member across teams, in id order.
func (r *MemberRepository) ListActive(ctx context.Context) ([]member.Member, error) {
	return r.list(ctx,
		`SELECT `+memberColumns+`
		   FROM members
		  WHERE is_active = TRUE
		  ORDER BY member_id`,
	)
}

func (r *MemberRepository) ListAll(ctx context.Context) ([]member.Member, error) {
	return r.list(ctx,
		`SELECT `+memberColumns+`
		   FROM members
		  ORDER BY member_id`,
	)
}

func (r *MemberRepository) list(ctx context.Context, q string, args ...any) ([]member.Member, error) {
	rows, err := query(ctx, r.db, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

func scanMembers(rows *sql.Rows) ([]member.Member, error) {
	var res []member.Member
	for rows.Next() {
		var m member.Member
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.Email, &m.TeamName, &m.IsActive); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func scanMemberRow(row *sql.Row) (member.Member, error) {
	var m member.Member
	err := row.Scan(&m.ID, &m.DisplayName, &m.Email, &m.TeamName, &m.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return member.Member{}, &domain.DomainError{
			Code:       domain.ErrorCodeMemberNotFound,
			Message:    "member not found",
			HTTPStatus: 404,
		}
	}
	if err != nil {
		return member.Member{}, err
	}
	return m, nil
}
