package controllers

import (
	"net/http"

	"brickscapital/services"
	"brickscapital/types"

	"github.com/gin-gonic/gin"
)

// InvestorCookie holds the display name of the demo investor. There is no
// real session behind it.
const InvestorCookie = "bc_investor"

type PortalControllerI interface {
	Show(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type portalController struct {
	views *Views
}

func NewPortalController(views *Views) PortalControllerI {
	return &portalController{views: views}
}

func (p *portalController) Show(ctx *gin.Context) {
	view := p.views.Page(ctx, services.PagePortal)
	if name, err := ctx.Cookie(InvestorCookie); err == nil && name != "" {
		dashboard := services.Dashboard(types.Investor{Name: name})
		view.Dashboard = &dashboard
	}
	p.views.Render(ctx, http.StatusOK, view)
}

func (p *portalController) Login(ctx *gin.Context) {
	investor, err := services.Login(ctx.PostForm("email"), ctx.PostForm("password"))
	if err != nil {
		view := p.views.Page(ctx, services.PagePortal)
		view.Flash, view.FlashError = "portal.login.error", true
		p.views.Render(ctx, http.StatusBadRequest, view)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(InvestorCookie, investor.Name, 0, "/", "", false, true)
	ctx.Redirect(http.StatusSeeOther, "/portal")
}

func (p *portalController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(InvestorCookie, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusSeeOther, "/portal")
}
