package meetingValidator

import (
	"clubhub/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Number      int    `json:"number"`
			Title       string `json:"title"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Number < 1 {
			errors["number"] = "Level number must be greater than 0!"
		}
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLevel", reqData)
		return c.Next()
	}
}

func CreateMeeting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			LevelID     uint   `json:"level_id"`
			ScheduledAt string `json:"scheduled_at"`
			Venue       string `json:"venue"`
			Notes       string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.LevelID == 0 {
			errors["level_id"] = "Please select a level!"
		}
		if strings.TrimSpace(reqData.ScheduledAt) == "" {
			errors["scheduled_at"] = "Please select a date and time!"
		} else if _, err := time.Parse(time.RFC3339, reqData.ScheduledAt); err != nil {
			errors["scheduled_at"] = "Date and time must be in RFC3339 format!"
		}
		if len(strings.TrimSpace(reqData.Venue)) < 3 {
			errors["venue"] = "Venue is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMeeting", reqData)
		return c.Next()
	}
}

func CreateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Role name must be at least 2 characters long!",
			})
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}

func RequestRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RoleID uint `json:"role_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.RoleID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role_id": "Please select a role!",
			})
		}

		c.Locals("validatedRoleRequest", reqData)
		return c.Next()
	}
}

func DecideAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Action string `json:"action"`
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
		return c.Next()
	}
}

func CreateTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			LevelID     uint   `json:"level_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if len(strings.TrimSpace(reqData.Description)) < 10 {
			errors["description"] = "Description must be at least 10 characters long!"
		}
		if reqData.LevelID == 0 {
			errors["level_id"] = "Please select a level!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTask", reqData)
		return c.Next()
	}
}
