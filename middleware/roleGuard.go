package middleware

import (
	"clubhub/database"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireGlobalRole returns a middleware that allows only users whose global
// role is one of the given roles. Reads the fresh role from the database
// rather than trusting the token claim.
func RequireGlobalRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking role!", nil)
		}

		for _, r := range roles {
			if user.GlobalRole == r {
				c.Locals("globalRole", user.GlobalRole)
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// RequireClubAdmin allows only an active admin of some club and stores that
// club's ID in the context for the handler.
func RequireClubAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var admin models.ClubAdmin
		err := database.Database.Db.Where("user_id = ? AND active = ? AND is_deleted = ?", userID, true, false).First(&admin).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusForbidden, false, "You are not an admin of any club!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking club admin!", nil)
		}

		c.Locals("adminClubId", admin.ClubID)
		return c.Next()
	}
}
