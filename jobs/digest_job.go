package jobs

import (
	"fmt"
	"log"

	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/notifications"
	"gorm.io/gorm"
)

// SendChefDigests mails every chef a summary of paid enrollments and
// revenue across their published courses.
func SendChefDigests(db *gorm.DB) {
	log.Println("Running job: SendChefDigests...")

	var chefs []models.User
	if err := db.Where("role = ?", models.RoleChef).Find(&chefs).Error; err != nil {
		log.Printf("Error loading chefs: %v", err)
		return
	}

	for _, chef := range chefs {
		var courses []models.Course
		if err := db.Where("chef_id = ?", chef.ID).Find(&courses).Error; err != nil {
			log.Printf("Error loading courses for chef %s: %v", chef.ID, err)
			continue
		}
		if len(courses) == 0 {
			continue
		}

		var rows string
		var totalStudents, totalRevenueCents int64
		for i := range courses {
			enrolled, err := courses[i].EnrolledCount(db)
			if err != nil {
				continue
			}
			revenue, err := courses[i].TotalRevenueCents(db)
			if err != nil {
				continue
			}
			totalStudents += enrolled
			totalRevenueCents += revenue
			rows += fmt.Sprintf("<li><b>%s</b>: %d students, $%d.%02d</li>",
				courses[i].Title, enrolled, revenue/100, revenue%100)
		}

		emailSubject := "Your weekly Culinary Academy digest"
		emailBody := fmt.Sprintf(
			"<h1>Weekly digest</h1><p>Hi %s,</p><ul>%s</ul><p>Total: %d students, $%d.%02d</p>",
			chef.Username, rows, totalStudents, totalRevenueCents/100, totalRevenueCents%100,
		)

		go notifications.SendEmail(chef.Username, chef.Email, emailSubject, emailBody)
	}
}
