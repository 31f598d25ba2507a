package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorKey    = "visitor"
	VisitorCookie = "bc_visitor"
	visitorMaxAge = 30 * 24 * 60 * 60
)

// VisitorMiddleware gives every browser a random visitor ID cookie, used to
// key per-visitor widget state.
func VisitorMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := ctx.Cookie(VisitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			ctx.SetSameSite(http.SameSiteLaxMode)
			ctx.SetCookie(VisitorCookie, id, visitorMaxAge, "/", "", false, true)
		}
		ctx.Set(VisitorKey, id)
		ctx.Next()
	}
}

func VisitorID(ctx *gin.Context) string {
	return ctx.GetString(VisitorKey)
}
