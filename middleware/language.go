package middleware

import (
	"net/http"

	"brickscapital/utils/i18n"

	"github.com/gin-gonic/gin"
)

const (
	LanguageKey    = "lang"
	LanguageCookie = "bc_lang"
	languageMaxAge = 365 * 24 * 60 * 60
)

// LanguageMiddleware resolves the display language from the ?lang= query,
// the language cookie or Accept-Language, in that order.
func LanguageMiddleware(fallback i18n.Language) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lang, ok := i18n.Parse(ctx.Query("lang"))
		if !ok {
			if cookie, err := ctx.Cookie(LanguageCookie); err == nil {
				lang, ok = i18n.Parse(cookie)
			}
		}
		if !ok {
			lang = i18n.Negotiate(ctx.GetHeader("Accept-Language"), fallback)
		}
		ctx.Set(LanguageKey, lang)
		ctx.Next()
	}
}

// Language returns the language resolved for the request.
func Language(ctx *gin.Context) i18n.Language {
	if v, ok := ctx.Get(LanguageKey); ok {
		if lang, ok := v.(i18n.Language); ok {
			return lang
		}
	}
	return i18n.Spanish
}

// SetLanguageCookie remembers the visitor's choice for a year.
func SetLanguageCookie(ctx *gin.Context, lang i18n.Language) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(LanguageCookie, lang.String(), languageMaxAge, "/", "", false, true)
}
