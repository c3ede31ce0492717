package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todoapp/pkg/apierrors"
	"todoapp/pkg/session"
)

const userIDKey = "user_id"

// RequireAuth is the gate in front of every task route. It accepts the
// session token from an Authorization bearer header or the session
// cookie. API callers get a 401 payload; browser flows are redirected to
// the login page. Either way the request never reaches a repository
// without an authenticated owner.
func RequireAuth(sessions *session.Manager, redirectToLogin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(session.CookieName); err == nil {
				token = cookie
			}
		}

		userID, err := sessions.Verify(token)
		if err != nil {
			if redirectToLogin {
				c.Redirect(http.StatusFound, "/login")
			} else {
				lang := GetLang(c)
				c.JSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
				)
			}
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) uint64 {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return 0
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
