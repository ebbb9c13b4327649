package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/errors"
	jwt_internal "github.com/inkwell-dev/inkwell/internal/jwt"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

type Auth struct {
	jwtService jwt_internal.TokenService
}

func NewAuth(jwtService jwt_internal.TokenService) *Auth {
	return &Auth{jwtService: jwtService}
}

// RequireAuth verifies the bearer token and stores the authenticated user
// in the request context. A missing token and an invalid one are distinct
// outcomes only here, at the transport boundary.
func (a *Auth) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUser reads the token from the Authorization header. Login and
// register also set a cookie, but verification only trusts the header.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, errors.Unauthorized("Not authorized, no token")
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Unauthorized("Not authorized, token failed")
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, errors.Unauthorized("Not authorized, token failed")
	}
	username, _ := claims["username"].(string)

	return &domain.User{Id: int64(uid), Username: username}, nil
}

// GetUserFromContext retrieves the authenticated user, nil when absent.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
