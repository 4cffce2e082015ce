package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-availability/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertMemberQuery = `
INSERT INTO members(id, availability)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET availability = EXCLUDED.availability, updated_at = now()
RETURNING id, availability`
	selectMemberQuery  = `SELECT id, availability FROM members WHERE id=$1`
	selectMembersQuery = `SELECT id, availability FROM members ORDER BY id`
)

// UpsertMember stores member availability, replacing any previous vector.
func (p *Postgres) UpsertMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	var (
		id  string
		vec []int
	)
	err := p.db.QueryRow(ctx, upsertMemberQuery, member.ID, []int(member.Availability)).Scan(&id, &vec)
	if err != nil {
		p.log.Errorw("failed to upsert member", "error", err, "member_id", member.ID)
		return nil, fmt.Errorf("upsert member: %w", err)
	}

	p.log.Infow("member availability updated", "member_id", member.ID)
	return &entities.Member{ID: id, Availability: vec}, nil
}

// GetMember returns a member by id.
func (p *Postgres) GetMember(ctx context.Context, memberID string) (*entities.Member, error) {
	var (
		id  string
		vec []int
	)
	if err := p.db.QueryRow(ctx, selectMemberQuery, memberID).Scan(&id, &vec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &entities.Member{ID: id, Availability: vec}, nil
}

// ListMembers returns all members ordered by id.
func (p *Postgres) ListMembers(ctx context.Context) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, selectMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var (
			id  string
			vec []int
		)
		if err := rows.Scan(&id, &vec); err != nil {
			p.log.Errorw("failed to scan members", "error", err)
			return nil, fmt.Errorf("scan members: %w", err)
		}
		members = append(members, entities.Member{ID: id, Availability: vec})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}
