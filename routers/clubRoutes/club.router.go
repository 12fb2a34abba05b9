package clubRoutes

import (
	controllers "clubhub/controllers/club"
	leaderboard "clubhub/controllers/leaderboard"
	"clubhub/middleware"
	"clubhub/models"
	validators "clubhub/validators/club"

	"github.com/gofiber/fiber/v2"
)

// SetupClubRoutes sets up club browsing, membership and proposal routes
func SetupClubRoutes(app *fiber.App) {
	clubGroup := app.Group("/club")

	clubGroup.Get("/list", middleware.JWTMiddleware, controllers.ListClubs)
	clubGroup.Post("/request", middleware.JWTMiddleware, validators.RequestClub(), controllers.RequestClub)
	clubGroup.Post("/:id/join", middleware.JWTMiddleware, controllers.JoinClub)
	clubGroup.Get("/:id/leaderboard", middleware.JWTMiddleware, leaderboard.GetClubLeaderboard)

	// Location catalog used by the club proposal form
	locationGroup := app.Group("/location")
	locationGroup.Get("/states", controllers.ListStates)
	locationGroup.Get("/districts", controllers.ListDistricts)
	locationGroup.Get("/institutions", controllers.ListInstitutions)

	// Super admin decisions on club proposals
	superGroup := app.Group("/super")
	superGroup.Get("/club-requests", middleware.JWTMiddleware, middleware.RequireGlobalRole(models.RoleSuper), controllers.ListClubRequests)
	superGroup.Post("/club-requests/:id/decide", middleware.JWTMiddleware, middleware.RequireGlobalRole(models.RoleSuper), validators.Decide(), controllers.DecideClubRequest)

	// Club admin membership management
	adminGroup := app.Group("/admin")
	adminGroup.Get("/members", middleware.JWTMiddleware, middleware.RequireClubAdmin(), controllers.ListMembers)
	adminGroup.Post("/members/:id/decide", middleware.JWTMiddleware, middleware.RequireClubAdmin(), validators.Decide(), controllers.DecideMembership)
}
