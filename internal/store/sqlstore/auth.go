package sqlstore

import (
	"context"
	"strings"
	"time"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/scanner"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

func (s *Store) CreateUser(ctx context.Context, u model.User) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("user id", u.ID); err != nil {
		return err
	}
	if err := required("email", u.Email); err != nil {
		return err
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return s.insert(ctx, "create user",
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.ID, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, utils.TimeToMillis(u.CreatedAt),
	)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	if err := s.ready(ctx); err != nil {
		return model.User{}, err
	}
	u, err := scanner.ScanUser(s.queryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		return model.User{}, notFound(err, "get user")
	}
	return *u, nil
}

func (s *Store) CreateSession(ctx context.Context, sess model.Session) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("session token", sess.Token); err != nil {
		return err
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	return s.insert(ctx, "create session",
		`INSERT INTO sessions (token, user_id, ip_address, user_agent, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.Token, sess.UserID, sess.IPAddress, sess.UserAgent,
		utils.TimeToMillis(sess.CreatedAt), utils.TimeToMillis(sess.ExpiresAt),
	)
}

func (s *Store) GetSessionUserID(ctx context.Context, token string, now time.Time) (string, error) {
	if err := s.ready(ctx); err != nil {
		return "", err
	}
	var userID string
	err := s.queryRow(ctx,
		`SELECT user_id FROM sessions WHERE token = ? AND expires_at > ?`,
		token, utils.TimeToMillis(now),
	).Scan(&userID)
	if err != nil {
		return "", notFound(err, "get session")
	}
	return userID, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.execAffecting(ctx, "delete session", `DELETE FROM sessions WHERE token = ?`, token)
}
