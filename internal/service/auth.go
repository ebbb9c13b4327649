package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/errors"
	"github.com/inkwell-dev/inkwell/internal/logger"
)

type AuthService interface {
	Register(username string, email domain.Email, password domain.Password) (domain.User, string, error)
	Login(email domain.Email, password domain.Password) (domain.User, string, error)
	Profile(id domain.UserId) (domain.User, error)
}

type Auth struct {
	storage AuthStorage
	jwt     TokenIssuer
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByEmail(email domain.Email) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
	UserExists(email domain.Email, username string) (bool, error)
}

type TokenIssuer interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt TokenIssuer) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Register creates the user and logs them in. The duplicate check spans
// email and username with OR semantics: one existing match on either field
// rejects the registration.
func (a *Auth) Register(username string, email domain.Email, password domain.Password) (domain.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return domain.User{}, "", errors.Validation("All fields are required")
	}

	exists, err := a.storage.UserExists(email, username)
	if err != nil {
		return domain.User{}, "", err
	}
	if exists {
		return domain.User{}, "", errors.Validation("User already exists")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user, err := a.storage.SaveUser(domain.User{
		Username: username,
		Email:    email,
		PassHash: string(passHash),
	})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	return user, token, nil
}

// Login checks credentials and returns the user with a fresh token.
// Unknown email and wrong password produce the identical error so callers
// can't enumerate users.
func (a *Auth) Login(email domain.Email, password domain.Password) (domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.User{}, "", errors.Unauthorized("Invalid credentials")
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return domain.User{}, "", errors.Unauthorized("Invalid credentials")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (a *Auth) Profile(id domain.UserId) (domain.User, error) {
	return a.storage.UserById(id)
}
