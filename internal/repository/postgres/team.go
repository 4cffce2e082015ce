package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-availability/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

const (
	insertTeamQuery        = "INSERT INTO teams(name) VALUES($1) RETURNING id"
	insertTeamMemberQuery  = "INSERT INTO team_members(team_id, member_id, position) VALUES ($1, $2, $3)"
	selectTeamIDQuery      = "SELECT id FROM teams WHERE name=$1"
	selectTeamMembersQuery = `SELECT member_id FROM team_members WHERE team_id=$1 ORDER BY position`
	selectAllTeamsQuery    = `
SELECT t.name, tm.member_id
FROM teams t
LEFT JOIN team_members tm ON tm.team_id = t.id
ORDER BY t.name, tm.position`
)

// CreateTeam inserts a team and its ordered member references.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var teamID int64
	if err := tx.QueryRow(ctx, insertTeamQuery, team.Name).Scan(&teamID); err != nil {
		if pgErrCode(err) == uniqueViolation {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	for pos, memberID := range team.Members {
		if _, err := tx.Exec(ctx, insertTeamMemberQuery, teamID, memberID, pos); err != nil {
			if pgErrCode(err) == foreignKeyViolation {
				return nil, fmt.Errorf("%w: %q", entities.ErrMemberNotFound, memberID)
			}
			return nil, fmt.Errorf("insert team member: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team", team.Name, "members", len(team.Members))
	return p.GetTeam(ctx, team.Name)
}

// GetTeam fetches team with ordered member ids by name.
func (p *Postgres) GetTeam(ctx context.Context, name string) (*entities.Team, error) {
	var teamID int64
	if err := p.db.QueryRow(ctx, selectTeamIDQuery, name).Scan(&teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	rows, err := p.db.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan team members: %w", err)
	}

	return &entities.Team{Name: name, Members: members}, nil
}

// ListTeams returns every team ordered by name, members in insertion order.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, selectAllTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var (
			name     string
			memberID *string
		)
		if err := rows.Scan(&name, &memberID); err != nil {
			return nil, fmt.Errorf("scan teams: %w", err)
		}
		if len(teams) == 0 || teams[len(teams)-1].Name != name {
			teams = append(teams, entities.Team{Name: name, Members: []string{}})
		}
		if memberID != nil {
			last := &teams[len(teams)-1]
			last.Members = append(last.Members, *memberID)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
