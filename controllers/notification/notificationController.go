package notificationController

import (
	"log"
	"time"

	"clubhub/database"
	"clubhub/middleware"
	"clubhub/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications lists the authenticated user's notifications, newest first
func ListNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var notifications []models.Notification
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Limit(100).Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	var unread int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL AND is_deleted = ?", userID, false).
		Count(&unread)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkRead marks one of the user's notifications as read
func MarkRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notifID, err := c.ParamsInt("id")
	if err != nil || notifID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification id!", nil)
	}

	db := database.Database.Db

	var notif models.Notification
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", notifID, userID, false).First(&notif).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	if notif.ReadAt == nil {
		now := time.Now()
		notif.ReadAt = &now
		if err := db.Save(&notif).Error; err != nil {
			log.Printf("Error marking notification read: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notification read!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", notif)
}

// MarkAllRead marks all of the user's notifications as read
func MarkAllRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	now := time.Now()
	if err := database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL AND is_deleted = ?", userID, false).
		Update("read_at", &now).Error; err != nil {
		log.Printf("Error marking notifications read: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notifications read!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read!", nil)
}
