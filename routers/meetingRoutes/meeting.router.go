package meetingRoutes

import (
	controllers "clubhub/controllers/meeting"
	"clubhub/middleware"
	validators "clubhub/validators/meeting"

	"github.com/gofiber/fiber/v2"
)

// SetupMeetingRoutes sets up level, meeting, task and role routes
func SetupMeetingRoutes(app *fiber.App) {
	clubGroup := app.Group("/club")
	clubGroup.Get("/:id/levels", middleware.JWTMiddleware, controllers.ListLevels)
	clubGroup.Get("/:id/meetings", middleware.JWTMiddleware, controllers.ListMeetings)

	meetingGroup := app.Group("/meeting")
	meetingGroup.Post("/:id/role-request", middleware.JWTMiddleware, validators.RequestRole(), controllers.RequestRole)

	adminGroup := app.Group("/admin")
	adminGroup.Post("/levels", middleware.JWTMiddleware, middleware.RequireClubAdmin(), validators.CreateLevel(), controllers.CreateLevel)
	adminGroup.Post("/meetings", middleware.JWTMiddleware, middleware.RequireClubAdmin(), validators.CreateMeeting(), controllers.CreateMeeting)
	adminGroup.Delete("/meetings/:id", middleware.JWTMiddleware, middleware.RequireClubAdmin(), controllers.DeleteMeeting)
	adminGroup.Post("/meetings/:id/tasks", middleware.JWTMiddleware, middleware.RequireClubAdmin(), validators.CreateTask(), controllers.CreateTask)
	adminGroup.Post("/roles", middleware.JWTMiddleware, middleware.RequireClubAdmin(), validators.CreateRole(), controllers.CreateRole)
	adminGroup.Post("/role-requests/:id/decide", middleware.JWTMiddleware, middleware.RequireClubAdmin(), validators.DecideAction(), controllers.DecideRoleRequest)
}
