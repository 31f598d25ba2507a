package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const staticPrefix = "/static/"

type PageControllerI interface {
	Show(ctx *gin.Context)
	NotFound(ctx *gin.Context)
}

type pageController struct {
	views *Views
}

func NewPageController(views *Views) PageControllerI {
	return &pageController{views: views}
}

// Show renders the page named by the request path. Unknown names render the
// home page.
func (p *pageController) Show(ctx *gin.Context) {
	page := strings.Trim(ctx.Request.URL.Path, "/")
	p.views.Render(ctx, http.StatusOK, p.views.Page(ctx, page))
}

// NotFound renders the home page for unknown page paths. Missing API routes,
// static files and non-GET requests get a plain 404.
func (p *pageController) NotFound(ctx *gin.Context) {
	if isAPI(ctx) || (ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if strings.HasPrefix(ctx.Request.URL.Path, staticPrefix) {
		ctx.String(http.StatusNotFound, "404 page not found")
		return
	}
	p.Show(ctx)
}
