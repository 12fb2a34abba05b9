package achievementValidator

import (
	"clubhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RequestAchievement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LevelID   uint   `json:"level_id"`
			MeetingID uint   `json:"meeting_id"`
			Notes     string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LevelID == 0 {
			errors["level_id"] = "Please select a level!"
		}
		if reqData.MeetingID == 0 {
			errors["meeting_id"] = "Please select a meeting!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAchievement", reqData)
		return c.Next()
	}
}

func Decide() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Action string `json:"action"`
			Notes  string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		action := strings.ToUpper(strings.TrimSpace(reqData.Action))
		if action != "APPROVE" && action != "REJECT" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"action": "Action must be APPROVE or REJECT!",
			})
		}

		c.Locals("validatedAction", action)
		c.Locals("validatedNotes", strings.TrimSpace(reqData.Notes))
		return c.Next()
	}
}
