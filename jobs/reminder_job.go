package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/notifications"
	"gorm.io/gorm"
)

const staleAfterDays = 7

// SendProgressReminders nudges students with a paid, unfinished enrollment
// they have not touched for a week.
func SendProgressReminders(db *gorm.DB) {
	log.Println("Running job: SendProgressReminders...")

	cutoff := time.Now().AddDate(0, 0, -staleAfterDays)

	var staleEnrollments []models.Enrollment
	err := db.
		Preload("Student").
		Preload("Course").
		Where("is_paid = ? AND completed = ?", true, false).
		Where("last_accessed IS NULL OR last_accessed < ?", cutoff).
		Find(&staleEnrollments).Error
	if err != nil {
		log.Printf("Error checking for stale enrollments: %v", err)
		return
	}

	if len(staleEnrollments) == 0 {
		return
	}

	for _, enrollment := range staleEnrollments {
		emailSubject := "Your course is waiting for you"
		emailBody := fmt.Sprintf(
			"<h1>Keep cooking!</h1><p>Hi %s,</p><p>You haven't visited <b>%s</b> in a while. You're at %d%% — pick up where you left off.</p>",
			enrollment.Student.Username,
			enrollment.Course.Title,
			enrollment.ProgressPercentage,
		)

		go notifications.SendEmail(enrollment.Student.Username, enrollment.Student.Email, emailSubject, emailBody)
	}

	log.Printf("Sent %d progress reminder(s).", len(staleEnrollments))
}
