package certificateValidator

import (
	"clubhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID  uint `json:"user_id"`
			LevelID uint `json:"level_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User is required!"
		}
		if reqData.LevelID == 0 {
			errors["level_id"] = "Level is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}
