package routes

import (
	"brickscapital/controllers"
	"brickscapital/middleware"
	"brickscapital/services"
	"brickscapital/templates"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the routes are served by.
type Dependencies struct {
	Calculator  services.CalculatorServiceI
	Contact     services.ContactServiceI
	Assets      services.AssetServiceI
	RateLimiter *middleware.RateLimiter
	AdminToken  string
}

func Routes(r *gin.Engine, deps Dependencies) {
	views := controllers.NewViews(deps.Assets, deps.Calculator)
	pages := controllers.NewPageController(views)
	calculator := controllers.NewCalculatorController(deps.Calculator, views)
	contact := controllers.NewContactController(deps.Contact, views, deps.AdminToken)
	portal := controllers.NewPortalController(views)

	r.StaticFS("/static", templates.Static())

	r.GET("/", pages.Show)
	for _, page := range []string{services.PageAbout, services.PageFunds, services.PageContact} {
		r.GET("/"+page, pages.Show)
	}
	r.GET("/lang/:code", controllers.LanguageController.Switch)
	r.POST("/calculator", calculator.Submit)
	r.POST("/contact", middleware.RateLimitMiddleware(deps.RateLimiter, contact.RateLimited), contact.Submit)

	r.GET("/portal", portal.Show)
	r.POST("/portal/login", portal.Login)
	r.POST("/portal/logout", portal.Logout)

	v1 := r.Group("/api")

	{
		v1.GET("/keepServerRunning", controllers.HealthController.IsRunning)
		v1.GET("/funds", calculator.Funds)
		v1.POST("/calculator", calculator.Project)
		v1.POST("/contact", middleware.RateLimitMiddleware(deps.RateLimiter, nil), contact.SubmitAPI)
		v1.GET("/enquiries/export", contact.Export)
	}

	r.NoRoute(pages.NotFound)
}
