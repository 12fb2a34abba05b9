package clubValidator

import (
	"clubhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RequestClub() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClubName        string `json:"club_name"`
			StateID         uint   `json:"state_id"`
			DistrictID      uint   `json:"district_id"`
			InstitutionText string `json:"institution_text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.ClubName)) < 3 {
			errors["club_name"] = "Club name must be at least 3 characters long!"
		}
		if reqData.StateID == 0 {
			errors["state_id"] = "Please select a state!"
		}
		if reqData.DistrictID == 0 {
			errors["district_id"] = "Please select a district!"
		}
		if len(strings.TrimSpace(reqData.InstitutionText)) < 3 {
			errors["institution_text"] = "Institution name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClubRequest", reqData)
		return c.Next()
	}
}

func Decide() fiber.Handler {
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
