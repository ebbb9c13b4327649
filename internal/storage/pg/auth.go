package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

const uniqueViolation = "23505"

// SaveUser inserts a new user and returns the stored record. A unique
// violation surfaces as the same 400 the service-level duplicate check
// produces, covering the race between check and insert.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	err := s.db.QueryRow(
		"INSERT INTO users(username, email, password_hash) VALUES($1, $2, $3) RETURNING id, created",
		user.Username, user.Email, user.PassHash,
	).Scan(&user.Id, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, internal_errors.Validation("User already exists")
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	return s.userBy("email", email)
}

func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.userBy("id", id)
}

func (s *Storage) userBy(column string, value any) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT id, username, email, password_hash, created FROM users WHERE %s = $1", column),
		value,
	).Scan(&user.Id, &user.Username, &user.Email, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// UserExists reports whether a user with the given email OR username exists.
func (s *Storage) UserExists(email domain.Email, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR username = $2)",
		email, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
