package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"clubhub/database"
	"clubhub/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processMeetingReminders inserts one reminder notification per approved club
// member for every meeting scheduled later today or tomorrow. Re-runs are
// harmless: members who already have a reminder for a meeting are skipped.
func processMeetingReminders() {
	db := database.Database.Db

	windowStart := time.Now()
	windowEnd := now.With(windowStart.AddDate(0, 0, 1)).EndOfDay()

	var meetings []models.Meeting
	if err := db.Where("scheduled_at > ? AND scheduled_at <= ? AND is_deleted = ?", windowStart, windowEnd, false).
		Find(&meetings).Error; err != nil {
		logScheduler("Error fetching upcoming meetings: " + err.Error())
		return
	}

	for _, meeting := range meetings {
		var members []models.ClubMember
		if err := db.Where("club_id = ? AND status = ? AND is_deleted = ?", meeting.ClubID, models.StatusApproved, false).
			Find(&members).Error; err != nil {
			logScheduler("Error fetching members for meeting: " + err.Error())
			continue
		}

		payload, _ := json.Marshal(map[string]any{
			"meeting_id":   meeting.ID,
			"scheduled_at": meeting.ScheduledAt,
			"venue":        meeting.Venue,
		})

		for _, member := range members {
			var existing int64
			db.Model(&models.Notification{}).
				Where("user_id = ? AND type = ? AND payload ->> 'meeting_id' = ?",
					member.UserID, models.NotifMeetingReminder, fmt.Sprintf("%d", meeting.ID)).
				Count(&existing)
			if existing > 0 {
				continue
			}

			notif := models.Notification{
				UserID:  member.UserID,
				Type:    models.NotifMeetingReminder,
				Message: fmt.Sprintf("Reminder: %s at %s on %s", meeting.Title, meeting.Venue, meeting.ScheduledAt.Format("Jan 2, 3:04 PM")),
				Payload: payload,
				Channel: models.ChannelInApp,
			}
			if err := db.Create(&notif).Error; err != nil {
				logScheduler("Error creating reminder notification: " + err.Error())
			}
		}
	}

	if len(meetings) > 0 {
		logScheduler(fmt.Sprintf("Processed reminders for %d upcoming meeting(s)", len(meetings)))
	}
}

// StartReminderScheduler runs the meeting reminder job every hour.
func StartReminderScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", processMeetingReminders); err != nil {
		log.Fatalf("Failed to schedule meeting reminders: %v", err)
	}

	c.Start()
	logScheduler("Meeting reminder scheduler started (hourly)")
}
