package clubController

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
	"gorm.io/gorm"
)

// RequestClub lets a member propose a new club for super admin approval
func RequestClub(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedClubRequest").(*struct {
		ClubName        string `json:"club_name"`
		StateID         uint   `json:"state_id"`
		DistrictID      uint   `json:"district_id"`
		InstitutionText string `json:"institution_text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// One pending proposal per user
	var pending models.ClubRequest
	if err := db.Where("requested_by_user_id = ? AND status = ? AND is_deleted = ?", userID, models.StatusPending, false).
		First(&pending).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already have a pending club request!", nil)
	}

	request := models.ClubRequest{
		RequestedByUserID: userID,
		ClubName:          reqData.ClubName,
		StateID:           reqData.StateID,
		DistrictID:        reqData.DistrictID,
		InstitutionText:   reqData.InstitutionText,
		Status:            models.StatusPending,
	}

	if err := db.Create(&request).Error; err != nil {
		log.Printf("Error creating club request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit club request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Club request submitted successfully!", request)
}

// ListClubRequests lists pending club proposals for super admins
func ListClubRequests(c *fiber.Ctx) error {
	var requests []models.ClubRequest
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", models.StatusPending, false).
		Order("created_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch club requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Club requests fetched successfully!", requests)
}

// DecideClubRequest approves or rejects a club proposal. Approval creates the
// club with a unique slug and makes the requester its admin.
func DecideClubRequest(c *fiber.Ctx) error {
	superID, _ := c.Locals("userId").(uint)
	action, _ := c.Locals("validatedAction").(string)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	db := database.Database.Db

	var request models.ClubRequest
	if err := db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Club request not found!", nil)
	}
	if request.Status != models.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Club request already decided!", nil)
	}

	now := time.Now()
	var club models.Club

	err = db.Transaction(func(tx *gorm.DB) error {
		if action == "APPROVE" {
			club = models.Club{
				Name:            request.ClubName,
				Slug:            uniqueSlug(tx, request.ClubName),
				StateID:         request.StateID,
				DistrictID:      request.DistrictID,
				CreatedByUserID: request.RequestedByUserID,
				Status:          models.StatusApproved,
			}
			if err := tx.Create(&club).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.ClubAdmin{ClubID: club.ID, UserID: request.RequestedByUserID, Active: true}).Error; err != nil {
				return err
			}
			request.Status = models.StatusApproved
		} else {
			request.Status = models.StatusRejected
		}

		request.DecidedBy = &superID
		request.DecidedAt = &now
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		payload, _ := json.Marshal(fiber.Map{"club_request_id": request.ID, "action": action})
		return tx.Create(&models.AuditLog{
			ActorUserID: superID,
			Action:      "club_request_" + request.Status,
			TargetTable: "club_requests",
			TargetID:    fmt.Sprintf("%d", request.ID),
			Payload:     payload,
		}).Error
	})
	if err != nil {
		log.Printf("Error deciding club request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to decide club request!", nil)
	}

	notif := models.Notification{
		UserID:  request.RequestedByUserID,
		Type:    models.NotifClubRequestDecided,
		Message: fmt.Sprintf("Your club request for %q has been %s.", request.ClubName, request.Status),
		Channel: models.ChannelInApp,
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Printf("Error creating club request notification: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Club request decided successfully!", fiber.Map{
		"request": request,
		"club":    club,
	})
}

// ListClubs lists approved clubs
func ListClubs(c *fiber.Ctx) error {
	var clubs []models.Club
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", models.StatusApproved, false).
		Order("name asc").Find(&clubs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch clubs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Clubs fetched successfully!", clubs)
}

// JoinClub creates a pending membership for the authenticated user
func JoinClub(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	clubID, err := c.ParamsInt("id")
	if err != nil || clubID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid club id!", nil)
	}

	db := database.Database.Db

	var club models.Club
	if err := db.Where("id = ? AND status = ? AND is_deleted = ?", clubID, models.StatusApproved, false).First(&club).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Club not found!", nil)
	}

	var existing models.ClubMember
	if err := db.Where("club_id = ? AND user_id = ? AND is_deleted = ?", clubID, userID, false).First(&existing).Error; err == nil {
		if existing.Status == models.StatusApproved {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already a member of this club!", nil)
		}
		if existing.Status == models.StatusPending {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Your membership request is already pending!", nil)
		}
	}

	member := models.ClubMember{
		ClubID: uint(clubID),
		UserID: userID,
		Status: models.StatusPending,
	}

	if err := db.Create(&member).Error; err != nil {
		log.Printf("Error creating membership request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit membership request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Membership request submitted successfully!", member)
}

// ListMembers lists the admin's club members with user names
func ListMembers(c *fiber.Ctx) error {
	clubID, _ := c.Locals("adminClubId").(uint)

	type MemberWithUser struct {
		models.ClubMember
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	db := database.Database.Db

	var members []models.ClubMember
	if err := db.Where("club_id = ? AND is_deleted = ?", clubID, false).
		Order("created_at desc").Find(&members).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch members!", nil)
	}

	result := make([]MemberWithUser, len(members))
	for i, m := range members {
		var user models.User
		db.Where("id = ?", m.UserID).First(&user)
		result[i] = MemberWithUser{ClubMember: m, UserName: user.Name, UserEmail: user.Email}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Members fetched successfully!", fiber.Map{
		"members": result,
		"total":   len(result),
	})
}

// DecideMembership approves or rejects a pending membership in the admin's club
func DecideMembership(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(uint)
	clubID, _ := c.Locals("adminClubId").(uint)
	action, _ := c.Locals("validatedAction").(string)

	memberID, err := c.ParamsInt("id")
	if err != nil || memberID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid membership id!", nil)
	}

	db := database.Database.Db

	var member models.ClubMember
	if err := db.Where("id = ? AND club_id = ? AND is_deleted = ?", memberID, clubID, false).First(&member).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Membership request not found!", nil)
	}
	if member.Status != models.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Membership request already decided!", nil)
	}

	now := time.Now()
	if action == "APPROVE" {
		member.Status = models.StatusApproved
		member.JoinedAt = &now
	} else {
		member.Status = models.StatusRejected
	}

	if err := db.Save(&member).Error; err != nil {
		log.Printf("Error deciding membership: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to decide membership!", nil)
	}

	payload, _ := json.Marshal(fiber.Map{"club_member_id": member.ID, "action": action})
	db.Create(&models.AuditLog{
		ActorUserID: adminID,
		Action:      "membership_" + member.Status,
		TargetTable: "club_members",
		TargetID:    fmt.Sprintf("%d", member.ID),
		Payload:     payload,
	})

	notif := models.Notification{
		UserID:  member.UserID,
		Type:    models.NotifMembershipDecided,
		Message: fmt.Sprintf("Your membership request has been %s.", member.Status),
		Channel: models.ChannelInApp,
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Printf("Error creating membership notification: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership decided successfully!", member)
}

// uniqueSlug slugifies the club name and appends a counter until it is free
func uniqueSlug(tx *gorm.DB, name string) string {
	base := utils.Slugify(name)
	slug := base
	for i := 2; ; i++ {
		var count int64
		tx.Model(&models.Club{}).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
