package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/connect-marketplace/internal/auth"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

const ContextUser = "authUser"

// Access is the requirement a route places on the caller.
type Access int

const (
	Public Access = iota
	Authenticated
	AdminOnly
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case AdminOnly:
		return "admin"
	}
	return "unknown"
}

type UserResolver interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// Guard enforces access before the handler runs. On protected routes the
// bearer token's subject is resolved to a live, active user which is then
// stored under ContextUser.
func Guard(access Access, tokens *auth.TokenIssuer, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if access == Public {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.AbortWith(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.AbortWith(c, http.StatusUnauthorized, "invalid_authorization_header")
			return
		}

		claims, err := tokens.ParseAccess(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.AbortWith(c, http.StatusUnauthorized, httperr.ErrInvalidToken.Error())
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.AbortWith(c, http.StatusUnauthorized, httperr.ErrInvalidToken.Error())
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if httperr.IsNotFound(err) {
				httperr.AbortWith(c, http.StatusUnauthorized, "User not found")
				return
			}
			httperr.Respond(c, err)
			c.Abort()
			return
		}
		if !user.IsActive {
			httperr.AbortWith(c, http.StatusUnauthorized, "User is inactive")
			return
		}

		if access == AdminOnly && user.Role != models.RoleAdmin {
			httperr.AbortWith(c, http.StatusForbidden, httperr.ErrPermissionDenied.Error())
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by Guard, or nil on public routes.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
