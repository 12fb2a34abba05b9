package achievementController

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"clubhub/database"
	"clubhub/middleware"
	"clubhub/models"
	"clubhub/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestAchievement lets an approved club member claim a level completion
// demonstrated at a meeting
func RequestAchievement(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAchievement").(*struct {
		LevelID   uint   `json:"level_id"`
		MeetingID uint   `json:"meeting_id"`
		Notes     string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var level models.Level
	if err := db.Where("id = ? AND is_deleted = ?", reqData.LevelID, false).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	var meeting models.Meeting
	if err := db.Where("id = ? AND club_id = ? AND is_deleted = ?", reqData.MeetingID, level.ClubID, false).First(&meeting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Meeting not found for this club!", nil)
	}

	var membership models.ClubMember
	if err := db.Where("club_id = ? AND user_id = ? AND status = ? AND is_deleted = ?",
		level.ClubID, userID, models.StatusApproved, false).First(&membership).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not an approved member of this club!", nil)
	}

	// One open or approved claim per (user, level)
	var existing models.AchievementRequest
	if err := db.Where("user_id = ? AND level_id = ? AND status IN ? AND is_deleted = ?",
		userID, reqData.LevelID, []string{models.StatusPending, models.StatusApproved}, false).First(&existing).Error; err == nil {
		if existing.Status == models.StatusPending {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already have a pending request for this level!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This level is already approved for you!", nil)
	}

	request := models.AchievementRequest{
		UserID:    userID,
		LevelID:   reqData.LevelID,
		MeetingID: reqData.MeetingID,
		Status:    models.StatusPending,
		Notes:     reqData.Notes,
	}

	if err := db.Create(&request).Error; err != nil {
		log.Printf("Error creating achievement request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit achievement request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Achievement request submitted successfully!", request)
}

// ListAchievementRequests lists pending requests for levels of the admin's club
func ListAchievementRequests(c *fiber.Ctx) error {
	clubID, _ := c.Locals("adminClubId").(uint)

	type RequestWithDetails struct {
		models.AchievementRequest
		UserName    string `json:"user_name"`
		UserEmail   string `json:"user_email"`
		LevelNumber int    `json:"level_number"`
		LevelTitle  string `json:"level_title"`
	}

	db := database.Database.Db

	var requests []models.AchievementRequest
	if err := db.Joins("JOIN levels ON levels.id = achievement_requests.level_id").
		Where("levels.club_id = ? AND achievement_requests.status = ? AND achievement_requests.is_deleted = ?",
			clubID, models.StatusPending, false).
		Order("achievement_requests.created_at asc").
		Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch achievement requests!", nil)
	}

	result := make([]RequestWithDetails, len(requests))
	for i, r := range requests {
		var user models.User
		db.Where("id = ?", r.UserID).First(&user)
		var level models.Level
		db.Where("id = ?", r.LevelID).First(&level)
		result[i] = RequestWithDetails{
			AchievementRequest: r,
			UserName:           user.Name,
			UserEmail:          user.Email,
			LevelNumber:        level.Number,
			LevelTitle:         level.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievement requests fetched successfully!", fiber.Map{
		"requests": result,
		"total":    len(result),
	})
}

// DecideAchievement approves or rejects an achievement request for the admin's club
func DecideAchievement(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(uint)
	clubID, _ := c.Locals("adminClubId").(uint)
	action, _ := c.Locals("validatedAction").(string)
	notes, _ := c.Locals("validatedNotes").(string)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	db := database.Database.Db

	var request models.AchievementRequest
	if err := db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Achievement request not found!", nil)
	}

	var level models.Level
	if err := db.Where("id = ? AND club_id = ?", request.LevelID, clubID).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Achievement request does not belong to your club!", nil)
	}

	if request.Status != models.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Achievement request already decided!", nil)
	}

	now := time.Now()
	if action == "APPROVE" {
		request.Status = models.StatusApproved
	} else {
		request.Status = models.StatusRejected
	}
	request.DecidedBy = &adminID
	request.DecidedAt = &now
	if notes != "" {
		request.Notes = notes
	}

	if err := db.Save(&request).Error; err != nil {
		log.Printf("Error deciding achievement request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to decide achievement request!", nil)
	}

	payload, _ := json.Marshal(fiber.Map{"achievement_request_id": request.ID, "action": action, "level_id": request.LevelID})
	db.Create(&models.AuditLog{
		ActorUserID: adminID,
		Action:      "achievement_" + request.Status,
		TargetTable: "achievement_requests",
		TargetID:    fmt.Sprintf("%d", request.ID),
		Payload:     payload,
	})

	notif := models.Notification{
		UserID:  request.UserID,
		Type:    models.NotifAchievementDecided,
		Message: fmt.Sprintf("Your achievement request for Level %d: %s has been %s.", level.Number, level.Title, request.Status),
		Payload: payload,
		Channel: models.ChannelInApp,
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Printf("Error creating achievement notification: %v", err)
	}

	var user models.User
	if err := db.Select("name, email").Where("id = ?", request.UserID).First(&user).Error; err == nil && user.Email != "" {
		utils.SendAchievementDecidedEmail(user.Email, user.Name, level.Title, request.Status)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievement request decided successfully!", request)
}
