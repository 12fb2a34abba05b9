package achievementRoutes

import (
	controllers "clubhub/controllers/achievement"
	"clubhub/middleware"
	validators "clubhub/validators/achievement"

	"github.com/gofiber/fiber/v2"
)

// SetupAchievementRoutes sets up achievement claim and decision routes
func SetupAchievementRoutes(app *fiber.App) {
	memberGroup := app.Group("/member")
	memberGroup.Post("/achievements", middleware.JWTMiddleware, validators.RequestAchievement(), controllers.RequestAchievement)

	adminGroup := app.Group("/admin")
	adminGroup.Get("/achievements", middleware.JWTMiddleware, middleware.RequireClubAdmin(), controllers.ListAchievementRequests)
	adminGroup.Post("/achievements/:id/decide", middleware.JWTMiddleware, middleware.RequireClubAdmin(), validators.Decide(), controllers.DecideAchievement)
}
