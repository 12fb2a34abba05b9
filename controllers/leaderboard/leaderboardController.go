package leaderboardController

import (
	"clubhub/database"
	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetClubLeaderboard ranks a club's members by approved achievement count
func GetClubLeaderboard(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid club id!", nil)
	}

	db := database.Database.Db

	var club models.Club
	if err := db.Where("id = ? AND status = ? AND is_deleted = ?", clubID, models.StatusApproved, false).First(&club).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Club not found!", nil)
	}

	type LeaderboardRow struct {
		UserID                    uint   `json:"user_id"`
		UserName                  string `json:"user_name"`
		ApprovedAchievementsCount int64  `json:"approved_achievements_count"`
	}

	var rows []LeaderboardRow
	err = db.Model(&models.AchievementRequest{}).
		Select("achievement_requests.user_id AS user_id, users.name AS user_name, COUNT(achievement_requests.id) AS approved_achievements_count").
		Joins("JOIN levels ON levels.id = achievement_requests.level_id").
		Joins("JOIN users ON users.id = achievement_requests.user_id").
		Where("levels.club_id = ? AND achievement_requests.status = ? AND achievement_requests.is_deleted = ?", clubID, models.StatusApproved, false).
		Group("achievement_requests.user_id, users.name").
		Order("approved_achievements_count DESC").
		Scan(&rows).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", fiber.Map{
		"club_id":     club.ID,
		"leaderboard": rows,
	})
}
