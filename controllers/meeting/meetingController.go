package meetingController

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"clubhub/database"
	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
)

// CreateLevel adds an achievement level to the admin's club
func CreateLevel(c *fiber.Ctx) error {
	clubID, _ := c.Locals("adminClubId").(uint)

	reqData, ok := c.Locals("validatedLevel").(*struct {
		Number      int    `json:"number"`
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.Level
	if err := db.Where("club_id = ? AND number = ? AND is_deleted = ?", clubID, reqData.Number, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A level with this number already exists!", nil)
	}

	level := models.Level{
		ClubID:      clubID,
		Number:      reqData.Number,
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := db.Create(&level).Error; err != nil {
		log.Printf("Error creating level: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create level!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Level created successfully!", level)
}

// ListLevels lists a club's levels ordered by number
func ListLevels(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid club id!", nil)
	}

	var levels []models.Level
	if err := database.Database.Db.Where("club_id = ? AND is_deleted = ?", clubID, false).
		Order("number asc").Find(&levels).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch levels!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Levels fetched successfully!", levels)
}

// CreateMeeting schedules a meeting for the admin's club
func CreateMeeting(c *fiber.Ctx) error {
	clubID, _ := c.Locals("adminClubId").(uint)

	reqData, ok := c.Locals("validatedMeeting").(*struct {
		Title       string `json:"title"`
		LevelID     uint   `json:"level_id"`
		ScheduledAt string `json:"scheduled_at"`
		Venue       string `json:"venue"`
		Notes       string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The level must belong to this club
	var level models.Level
	if err := db.Where("id = ? AND club_id = ? AND is_deleted = ?", reqData.LevelID, clubID, false).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found in your club!", nil)
	}

	scheduledAt, _ := time.Parse(time.RFC3339, reqData.ScheduledAt)

	meeting := models.Meeting{
		ClubID:      clubID,
		LevelID:     reqData.LevelID,
		Title:       reqData.Title,
		ScheduledAt: scheduledAt,
		Venue:       reqData.Venue,
		Notes:       reqData.Notes,
	}

	if err := db.Create(&meeting).Error; err != nil {
		log.Printf("Error creating meeting: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create meeting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Meeting created successfully!", meeting)
}

// ListMeetings lists a club's upcoming meetings
func ListMeetings(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid club id!", nil)
	}

	var meetings []models.Meeting
	if err := database.Database.Db.Where("club_id = ? AND is_deleted = ?", clubID, false).
		Order("scheduled_at asc").Find(&meetings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch meetings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Meetings fetched successfully!", meetings)
}

// DeleteMeeting soft-deletes a meeting in the admin's club
func DeleteMeeting(c *fiber.Ctx) error {
	clubID, _ := c.Locals("adminClubId").(uint)

	meetingID, err := c.ParamsInt("id")
	if err != nil || meetingID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid meeting id!", nil)
	}

	db := database.Database.Db

	var meeting models.Meeting
	if err := db.Where("id = ? AND club_id = ? AND is_deleted = ?", meetingID, clubID, false).First(&meeting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Meeting not found!", nil)
	}

	meeting.IsDeleted = true
	if err := db.Save(&meeting).Error; err != nil {
		log.Printf("Error deleting meeting: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete meeting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Meeting deleted successfully!", nil)
}

// CreateTask adds an evaluated task to a meeting in the admin's club
func CreateTask(c *fiber.Ctx) error {
	clubID, _ := c.Locals("adminClubId").(uint)

	meetingID, err := c.ParamsInt("id")
	if err != nil || meetingID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid meeting id!", nil)
	}

	reqData, ok := c.Locals("validatedTask").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		LevelID     uint   `json:"level_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var meeting models.Meeting
	if err := db.Where("id = ? AND club_id = ? AND is_deleted = ?", meetingID, clubID, false).First(&meeting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Meeting not found!", nil)
	}

	task := models.Task{
		MeetingID:   uint(meetingID),
		LevelID:     reqData.LevelID,
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := db.Create(&task).Error; err != nil {
		log.Printf("Error creating task: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task created successfully!", task)
}

// CreateRole adds a meeting role to the admin's club
func CreateRole(c *fiber.Ctx) error {
	clubID, _ := c.Locals("adminClubId").(uint)

	reqData, ok := c.Locals("validatedRole").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	role := models.Role{
		ClubID:      clubID,
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&role).Error; err != nil {
		log.Printf("Error creating role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Role created successfully!", role)
}

// RequestRole lets an approved club member request a role for a meeting
func RequestRole(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	meetingID, err := c.ParamsInt("id")
	if err != nil || meetingID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid meeting id!", nil)
	}

	reqData, ok := c.Locals("validatedRoleRequest").(*struct {
		RoleID uint `json:"role_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var meeting models.Meeting
	if err := db.Where("id = ? AND is_deleted = ?", meetingID, false).First(&meeting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Meeting not found!", nil)
	}

	// Requester must be an approved member of the meeting's club
	var membership models.ClubMember
	if err := db.Where("club_id = ? AND user_id = ? AND status = ? AND is_deleted = ?",
		meeting.ClubID, userID, models.StatusApproved, false).First(&membership).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not an approved member of this club!", nil)
	}

	var role models.Role
	if err := db.Where("id = ? AND club_id = ? AND is_deleted = ?", reqData.RoleID, meeting.ClubID, false).First(&role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Role not found in this club!", nil)
	}

	var existing models.RoleRequest
	if err := db.Where("meeting_id = ? AND user_id = ? AND role_id = ? AND is_deleted = ?",
		meetingID, userID, reqData.RoleID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already requested this role for this meeting!", nil)
	}

	request := models.RoleRequest{
		MeetingID: uint(meetingID),
		UserID:    userID,
		RoleID:    reqData.RoleID,
		Status:    models.StatusPending,
	}

	if err := db.Create(&request).Error; err != nil {
		log.Printf("Error creating role request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit role request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Role request submitted successfully!", request)
}

// DecideRoleRequest approves or rejects a role request for a meeting in the admin's club
func DecideRoleRequest(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(uint)
	clubID, _ := c.Locals("adminClubId").(uint)
	action, _ := c.Locals("validatedAction").(string)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	db := database.Database.Db

	var request models.RoleRequest
	if err := db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Role request not found!", nil)
	}

	var meeting models.Meeting
	if err := db.Where("id = ? AND club_id = ?", request.MeetingID, clubID).First(&meeting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Role request does not belong to your club!", nil)
	}

	if request.Status != models.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Role request already decided!", nil)
	}

	now := time.Now()
	if action == "APPROVE" {
		request.Status = models.StatusApproved
	} else {
		request.Status = models.StatusRejected
	}
	request.DecidedBy = &adminID
	request.DecidedAt = &now

	if err := db.Save(&request).Error; err != nil {
		log.Printf("Error deciding role request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to decide role request!", nil)
	}

	payload, _ := json.Marshal(fiber.Map{"role_request_id": request.ID, "action": action})
	db.Create(&models.AuditLog{
		ActorUserID: adminID,
		Action:      "role_request_" + request.Status,
		TargetTable: "role_requests",
		TargetID:    fmt.Sprintf("%d", request.ID),
		Payload:     payload,
	})

	notif := models.Notification{
		UserID:  request.UserID,
		Type:    models.NotifRoleRequestDecided,
		Message: fmt.Sprintf("Your role request for meeting %q has been %s.", meeting.Title, request.Status),
		Channel: models.ChannelInApp,
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Printf("Error creating role request notification: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role request decided successfully!", request)
}
