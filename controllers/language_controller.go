package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"brickscapital/middleware"
	"brickscapital/utils/i18n"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LanguageControllerI interface {
	Switch(ctx *gin.Context)
}

type languageController struct{}

var LanguageController LanguageControllerI = &languageController{}

// Switch stores the chosen language and sends the visitor back to the page
// they came from.
func (l *languageController) Switch(ctx *gin.Context) {
	lang, ok := i18n.Parse(ctx.Param("code"))
	if !ok {
		zap.L().Info("Unsupported language requested", zap.String("code", ctx.Param("code")))
		lang = middleware.Language(ctx)
	}
	middleware.SetLanguageCookie(ctx, lang)
	ctx.Redirect(http.StatusFound, backTo(ctx.Request.Referer(), ctx.Request.Host))
}

// backTo returns the local path of referer without its lang override, or "/"
// when the referer points at another host. Paths starting with // or /\ are
// read by browsers as another host too.
func backTo(referer, host string) string {
	u, err := url.Parse(referer)
	if err != nil || referer == "" || (u.Host != "" && u.Host != host) {
		return "/"
	}

	q := u.Query()
	q.Del("lang")
	target := u.Path
	if target == "" || target[0] != '/' || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		target = "/"
	}
	if encoded := q.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}
