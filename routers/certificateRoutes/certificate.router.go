package certificateRoutes

import (
	controllers "clubhub/controllers/certificate"
	"clubhub/middleware"
	validators "clubhub/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up certificate issuance and listing routes
func SetupCertificateRoutes(app *fiber.App) {
	memberGroup := app.Group("/member")
	memberGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetMyCertificates)

	adminGroup := app.Group("/admin")
	adminGroup.Get("/certificates", middleware.JWTMiddleware, middleware.RequireClubAdmin(), controllers.GetClubCertificates)
	adminGroup.Post("/certificates/generate",
		middleware.JWTMiddleware,
		middleware.RequireClubAdmin(),
		middleware.Idempotency(),
		validators.Generate(),
		controllers.GenerateCertificate)
}
