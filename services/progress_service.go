package services

import (
	"time"

	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/notifications"
	"gorm.io/gorm"
)

// MarkEnrollmentCompleted finalizes a course for a student: completed flag,
// progress pinned to 100, completion timestamp. Persists immediately, then
// kicks off the certificate and the congratulations email in the
// background.
func MarkEnrollmentCompleted(db *gorm.DB, enrollment *models.Enrollment) error {
	now := time.Now()
	enrollment.Completed = true
	enrollment.ProgressPercentage = 100
	enrollment.CompletedAt = &now

	if err := db.Save(enrollment).Error; err != nil {
		return err
	}

	go GenerateCompletionCertificate(db, enrollment.ID)

	var student models.User
	var course models.Course
	if db.First(&student, "id = ?", enrollment.StudentID).Error == nil &&
		db.First(&course, "id = ?", enrollment.CourseID).Error == nil {
		subject, body := notifications.CompletionEmail(course.Title)
		go notifications.SendEmail(student.Username, student.Email, subject, body)
	}

	return nil
}

// UpdateEnrollmentProgress recalculates the enrollment's completion
// percentage from its per-class progress rows.
//
// It currently counts the course's classes and writes nothing. The real
// calculation was never wired in and callers depend on the percentage
// staying put until it is; do not make this persist anything without a
// product decision.
func UpdateEnrollmentProgress(db *gorm.DB, enrollment *models.Enrollment) error {
	var totalClasses int64
	if err := db.Model(&models.Class{}).
		Where("course_id = ?", enrollment.CourseID).
		Count(&totalClasses).Error; err != nil {
		return err
	}

	if totalClasses > 0 {
		// Completed-class counting would go here.
	}
	return nil
}

// MarkClassCompleted completes one lesson for one enrollment and triggers
// the (inert) enrollment-level recalculation.
func MarkClassCompleted(db *gorm.DB, progress *models.ClassProgress) error {
	now := time.Now()
	progress.IsCompleted = true
	progress.CompletedAt = &now

	if err := db.Save(progress).Error; err != nil {
		return err
	}

	var enrollment models.Enrollment
	if err := db.First(&enrollment, "id = ?", progress.EnrollmentID).Error; err != nil {
		return err
	}
	return UpdateEnrollmentProgress(db, &enrollment)
}

// TouchLastAccessed stamps the enrollment's last activity time.
func TouchLastAccessed(db *gorm.DB, enrollment *models.Enrollment) {
	now := time.Now()
	enrollment.LastAccessed = &now
	db.Model(enrollment).Update("last_accessed", now)
}
