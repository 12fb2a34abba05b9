package certificateController

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"clubhub/certificate"
	"clubhub/config"
	"clubhub/database"
	"clubhub/middleware"
	"clubhub/models"
	"clubhub/utils"

	"github.com/gofiber/fiber/v2"
)

// newIssuer wires the issuance pipeline against the configured storage API
// and the shared database
func newIssuer() *certificate.Issuer {
	store := certificate.NewHTTPStore(certificate.StoreConfig{
		BaseURL:    config.AppConfig.StorageURL,
		Bucket:     config.AppConfig.StorageBucket,
		ServiceKey: config.AppConfig.StorageServiceKey,
		Timeout:    time.Duration(config.AppConfig.StorageTimeoutSec) * time.Second,
	})
	ledger := certificate.NewGormLedger(database.Database.Db)
	return certificate.NewIssuer(store, ledger, nil)
}

// GenerateCertificate issues a certificate for an approved achievement in the
// admin's club. It resolves the display data, checks the one-record-per-
// (member, level) precondition, then runs the render/hash/store/record
// pipeline and answers with the file URL and content hash.
func GenerateCertificate(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(uint)
	clubID, _ := c.Locals("adminClubId").(uint)

	reqData, ok := c.Locals("validatedGenerate").(*struct {
		UserID  uint `json:"user_id"`
		LevelID uint `json:"level_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Member not found!", nil)
	}

	var level models.Level
	if err := db.Where("id = ? AND club_id = ? AND is_deleted = ?", reqData.LevelID, clubID, false).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found in your club!", nil)
	}

	var club models.Club
	if err := db.Where("id = ? AND is_deleted = ?", clubID, false).First(&club).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Club not found!", nil)
	}

	// The achievement must be approved before a certificate can exist
	var achievement models.AchievementRequest
	if err := db.Where("user_id = ? AND level_id = ? AND status = ? AND is_deleted = ?",
		reqData.UserID, reqData.LevelID, models.StatusApproved, false).First(&achievement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "No approved achievement for this member and level!", nil)
	}

	// Caller-side precondition: at most one certificate per (member, level)
	issued, err := certificate.AlreadyIssued(db, reqData.UserID, reqData.LevelID)
	if err != nil {
		log.Printf("Error checking existing certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check existing certificates!", nil)
	}
	if issued {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued for this member and level!", nil)
	}

	result, err := newIssuer().Issue(c.Context(), certificate.IssueRequest{
		UserID:           user.ID,
		ClubID:           club.ID,
		LevelID:          level.ID,
		RecipientName:    user.Name,
		ClubName:         club.Name,
		ClubSlug:         club.Slug,
		LevelNumber:      level.Number,
		LevelTitle:       level.Title,
		LevelDescription: level.Description,
		IssuerID:         adminID,
	})
	if err != nil {
		return issuanceErrorResponse(c, err)
	}

	payload, _ := json.Marshal(fiber.Map{
		"user_id":  user.ID,
		"level_id": level.ID,
		"path":     result.Path,
		"hash":     result.Hash,
	})
	db.Create(&models.AuditLog{
		ActorUserID: adminID,
		Action:      "certificate_issued",
		TargetTable: "certificates",
		TargetID:    fmt.Sprintf("%d-%d", user.ID, level.ID),
		Payload:     payload,
	})

	notif := models.Notification{
		UserID:  user.ID,
		Type:    models.NotifCertificateIssued,
		Message: fmt.Sprintf("Your certificate for Level %d has been issued!", level.Number),
		Payload: payload,
		Channel: models.ChannelInApp,
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Printf("Error creating certificate notification: %v", err)
	}

	utils.SendCertificateIssuedEmail(user.Email, user.Name, level.Number, result.URL)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", fiber.Map{
		"url":  result.URL,
		"hash": result.Hash,
	})
}

// issuanceErrorResponse maps pipeline error kinds to HTTP statuses
func issuanceErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *certificate.ValidationError
	if errors.As(err, &validationErr) {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false,
			fmt.Sprintf("Certificate data incomplete: %s is empty!", validationErr.Field), nil)
	}

	var persistenceErr *certificate.PersistenceError
	if errors.As(err, &persistenceErr) && persistenceErr.Duplicate {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued for this member and level!", nil)
	}

	var storageErr *certificate.StorageError
	if errors.As(err, &storageErr) {
		log.Printf("Certificate upload failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to upload certificate. Please try again.", nil)
	}

	log.Printf("Certificate issuance failed: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Certificate generation failed. Please try again.", nil)
}

// GetMyCertificates lists the authenticated member's certificates
func GetMyCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificateWithDetails struct {
		models.Certificate
		LevelNumber int    `json:"level_number"`
		LevelTitle  string `json:"level_title"`
		ClubName    string `json:"club_name"`
	}

	db := database.Database.Db

	var certificates []models.Certificate
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithDetails, len(certificates))
	for i, cert := range certificates {
		var level models.Level
		db.Where("id = ?", cert.LevelID).First(&level)
		var club models.Club
		db.Where("id = ?", cert.ClubID).First(&club)
		result[i] = CertificateWithDetails{
			Certificate: cert,
			LevelNumber: level.Number,
			LevelTitle:  level.Title,
			ClubName:    club.Name,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// GetClubCertificates lists the admin club's issued certificates plus the
// approved achievements that do not have one yet (the eligible set)
func GetClubCertificates(c *fiber.Ctx) error {
	clubID, _ := c.Locals("adminClubId").(uint)

	db := database.Database.Db

	var certificates []models.Certificate
	if err := db.Where("club_id = ? AND is_deleted = ?", clubID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	// Approved achievements for this club's levels
	var approved []models.AchievementRequest
	if err := db.Joins("JOIN levels ON levels.id = achievement_requests.level_id").
		Where("levels.club_id = ? AND achievement_requests.status = ? AND achievement_requests.is_deleted = ?",
			clubID, models.StatusApproved, false).
		Find(&approved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch approved achievements!", nil)
	}

	// Subtract achievements that already have a certificate
	certified := make(map[string]bool, len(certificates))
	for _, cert := range certificates {
		certified[fmt.Sprintf("%d-%d", cert.UserID, cert.LevelID)] = true
	}

	type EligibleRow struct {
		models.AchievementRequest
		UserName    string `json:"user_name"`
		LevelNumber int    `json:"level_number"`
		LevelTitle  string `json:"level_title"`
	}

	var eligible []EligibleRow
	for _, a := range approved {
		if certified[fmt.Sprintf("%d-%d", a.UserID, a.LevelID)] {
			continue
		}
		var user models.User
		db.Where("id = ?", a.UserID).First(&user)
		var level models.Level
		db.Where("id = ?", a.LevelID).First(&level)
		eligible = append(eligible, EligibleRow{
			AchievementRequest: a,
			UserName:           user.Name,
			LevelNumber:        level.Number,
			LevelTitle:         level.Title,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"issued":   certificates,
		"eligible": eligible,
	})
}
