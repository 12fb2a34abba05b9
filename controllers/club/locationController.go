package clubController

import (
	"clubhub/database"
	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
)

// ListStates lists the location catalog's top level
func ListStates(c *fiber.Ctx) error {
	var states []models.State
	if err := database.Database.Db.Order("name asc").Find(&states).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch states!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "States fetched successfully!", states)
}

// ListDistricts lists districts, optionally filtered by state_id
func ListDistricts(c *fiber.Ctx) error {
	query := database.Database.Db.Order("name asc")
	if stateID := c.QueryInt("state_id"); stateID > 0 {
		query = query.Where("state_id = ?", stateID)
	}

	var districts []models.District
	if err := query.Find(&districts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch districts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Districts fetched successfully!", districts)
}

// ListInstitutions lists approved institutions, optionally filtered by district_id
func ListInstitutions(c *fiber.Ctx) error {
	query := database.Database.Db.Where("status = ?", models.StatusApproved).Order("name asc")
	if districtID := c.QueryInt("district_id"); districtID > 0 {
		query = query.Where("district_id = ?", districtID)
	}

	var institutions []models.Institution
	if err := query.Find(&institutions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch institutions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institutions fetched successfully!", institutions)
}
