package pg

import (
	"context"
	"database/sql"

	"sprintassign/internal/domain"
	"sprintassign/internal/domain/team"
)

type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, name string) (bool, error) {
	res, err := exec(ctx, r.db,
		`INSERT INTO teams (team_name) VALUES ($1)
		 ON CONFLICT (team_name) DO NOTHING`,
		name,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *TeamRepository) Roster(ctx context.Context, name string) (team.Team, error) {
	var exists bool
	if err := queryRow(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE team_name = $1)`,
		name,
	).Scan(&exists); err != nil {
		return team.Team{}, err
	}
	if !exists {
		return team.Team{}, &domain.DomainError{
			Code:       domain.ErrorCodeNotFound,
			Message:    "team not found",
			HTTPStatus: 404,
		}
	}

	rows, err := query(ctx, r.db,
		`SELECT `+memberColumns+`
		   FROM members
		  WHERE team_name = $1
		  ORDER BY display_name, member_id`,
		name,
	)
	if err != nil {
		return team.Team{}, err
	}
	defer rows.Close()

	members, err := scanMembers(rows)
	if err != nil {
		return team.Team{}, err
	}
	return team.Team{Name: name, Members: members}, nil
}
