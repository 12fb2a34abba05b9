package notificationRoutes

import (
	controllers "clubhub/controllers/notification"
	"clubhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up in-app notification routes
func SetupNotificationRoutes(app *fiber.App) {
	group := app.Group("/member/notifications")

	group.Get("/", middleware.JWTMiddleware, controllers.ListNotifications)
	group.Post("/:id/read", middleware.JWTMiddleware, controllers.MarkRead)
	group.Post("/read-all", middleware.JWTMiddleware, controllers.MarkAllRead)
}
