package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/chucky-1/finfine/internal/model"
)

type SessionsPostgres struct {
	conn *pgxpool.Pool
}

func NewSessionsPostgres(conn *pgxpool.Pool) *SessionsPostgres {
	return &SessionsPostgres{
		conn: conn,
	}
}

func (p *SessionsPostgres) Create(ctx context.Context, session *model.Session) error {
	query := `INSERT INTO finfine.sessions (id, token, user_id, name, email, avatar, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET token = EXCLUDED.token, name = EXCLUDED.name, email = EXCLUDED.email,
		avatar = EXCLUDED.avatar, role = EXCLUDED.role`
	_, err := p.conn.Exec(ctx, query, session.ID, session.Token, session.User.ID, session.User.Name,
		session.User.Email, session.User.Avatar, session.User.Role, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository.SessionsPostgres, create session error: %v", err)
	}
	return nil
}

func (p *SessionsPostgres) Get(ctx context.Context, id string) (*model.Session, error) {
	query := `SELECT id, token, user_id, name, email, avatar, role, created_at FROM finfine.sessions WHERE id=$1`
	var s model.Session
	err := p.conn.QueryRow(ctx, query, id).Scan(&s.ID, &s.Token, &s.User.ID, &s.User.Name,
		&s.User.Email, &s.User.Avatar, &s.User.Role, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository.SessionsPostgres, get session error: %v", err)
	}
	return &s, nil
}

func (p *SessionsPostgres) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM finfine.sessions WHERE id=$1`
	if _, err := p.conn.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("repository.SessionsPostgres, delete session error: %v", err)
	}
	return nil
}

// DeleteBefore removes sessions created before t and reports how many were removed.
func (p *SessionsPostgres) DeleteBefore(ctx context.Context, t time.Time) (int, error) {
	query := `DELETE FROM finfine.sessions WHERE created_at < $1`
	tag, err := p.conn.Exec(ctx, query, t)
	if err != nil {
		return 0, fmt.Errorf("repository.SessionsPostgres, delete old sessions error: %v", err)
	}
	return int(tag.RowsAffected()), nil
}
