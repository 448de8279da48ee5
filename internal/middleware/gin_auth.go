package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireAuth adapts the net/http middleware to Gin for API routes.
// Auth decisions stay session-based and transport-agnostic.
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return adapt(func(next http.Handler) http.Handler {
		return auth.RequireAuth(next)
	})
}

// GinRequireLogin adapts the net/http middleware to Gin for web pages,
// redirecting unauthenticated requests to loginURL.
func GinRequireLogin(auth *AuthMiddleware, loginURL string) gin.HandlerFunc {
	return adapt(func(next http.Handler) http.Handler {
		return auth.RequireLogin(next, loginURL)
	})
}

func adapt(wrap func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		wrap(next).ServeHTTP(c.Writer, c.Request)

		// If the middleware already wrote the response, stop the Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
