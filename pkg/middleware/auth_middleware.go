package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"soko/internal/models/db_models"
	"soko/pkg/utils"
)

const userContextKey = "user"

// PrincipalResolver loads the account behind a validated token.
type PrincipalResolver interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
}

// Protect authenticates the request from the Authorization header or the jwt
// cookie and stores the user in the context for the handlers downstream.
func Protect(tokenMaker *utils.TokenMaker, users PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			abortWith(c, utils.NewAppError(http.StatusUnauthorized,
				"You are not logged in! Please log in to get access."))
			return
		}

		claims, err := tokenMaker.Validate(tokenString)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			abortWith(c, utils.NewAppError(http.StatusUnauthorized, "Invalid token. Please log in again!"))
			return
		}

		user, err := users.FindActiveByID(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if user == nil {
			abortWith(c, utils.NewAppError(http.StatusUnauthorized,
				"The user belonging to this token does no longer exist."))
			return
		}
		if claims.IssuedAt != nil && user.ChangedPasswordAfter(claims.IssuedAt.Time) {
			abortWith(c, utils.NewAppError(http.StatusUnauthorized,
				"User recently changed password! Please log in again."))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRoles allows only the listed roles past. It must run after Protect.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWith(c, utils.NewAppError(http.StatusUnauthorized,
				"You are not logged in! Please log in to get access."))
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abortWith(c, utils.NewAppError(http.StatusForbidden,
			"You do not have permission to perform this action"))
	}
}

// RequireSubscription gates merchant actions on a live subscription. A payment
// inside the window counts even if the status flag lagged behind.
func RequireSubscription(window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWith(c, utils.NewAppError(http.StatusUnauthorized,
				"You are not logged in! Please log in to get access."))
			return
		}
		if user.Role == db_models.RoleAdmin {
			c.Next()
			return
		}

		paidRecently := user.LastPaymentAt > 0 &&
			time.Since(time.Unix(user.LastPaymentAt, 0)) <= window
		if user.SubscriptionStatus != db_models.SubscriptionActive && !paidRecently {
			abortWith(c, utils.NewAppError(http.StatusUnauthorized,
				"Your subscription has expired. Please renew it to get access."))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Protect.
func CurrentUser(c *gin.Context) (*db_models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*db_models.User)
	return user, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("jwt"); err == nil {
		return cookie
	}
	return ""
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
