package handlers

import (
	"errors"
	"time"

	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/notifications"
	"github.com/chefacademy/culinary_platform/services"
	"github.com/chefacademy/culinary_platform/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnrollmentHandler struct {
	db *gorm.DB
}

func NewEnrollmentHandler(db *gorm.DB) *EnrollmentHandler {
	return &EnrollmentHandler{db: db}
}

// Enroll creates an unpaid enrollment in a published course. Payment is
// confirmed separately.
func (h *EnrollmentHandler) Enroll(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	slug := c.Params("slug")

	var course models.Course
	if err := h.db.First(&course, "slug = ? AND is_published = ?", slug, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var existing models.Enrollment
	err := h.db.Where("student_id = ? AND course_id = ?", studentID, course.ID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You are already enrolled in this course"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	enrollment := models.Enrollment{
		StudentID: studentID,
		CourseID:  course.ID,
	}
	if err := h.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You are already enrolled in this course"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll"})
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// ConfirmPayment marks an enrollment paid. There is no payment processor
// behind this: it stamps the payment date, copies the course price, and
// assigns a generated receipt reference.
func (h *EnrollmentHandler) ConfirmPayment(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	enrollmentID := c.Params("enrollmentId")

	var enrollment models.Enrollment
	if err := h.db.Preload("Course").
		First(&enrollment, "id = ? AND student_id = ?", enrollmentID, studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	if enrollment.IsPaid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Enrollment is already paid"})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		ref, err := utils.GenerateUniqueReceiptRef(tx)
		if err != nil {
			return err
		}

		now := time.Now()
		enrollment.IsPaid = true
		enrollment.PaymentID = &ref
		enrollment.AmountPaidCents = enrollment.Course.PriceCents
		enrollment.PaymentDate = &now
		return tx.Save(&enrollment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to confirm payment"})
	}

	var student models.User
	if h.db.First(&student, "id = ?", studentID).Error == nil {
		subject, body := notifications.EnrollmentReceiptEmail(enrollment.Course.Title, *enrollment.PaymentID, enrollment.AmountPaidCents)
		go notifications.SendEmail(student.Username, student.Email, subject, body)
	}

	return c.JSON(enrollment)
}

// MyCourses lists the student's paid enrollments. Chefs have no business
// here and are sent to their dashboard instead.
func (h *EnrollmentHandler) MyCourses(c *fiber.Ctx) error {
	if middleware.Role(c) == models.RoleChef {
		return c.Redirect("/api/v1/chef/dashboard", fiber.StatusSeeOther)
	}

	studentID := middleware.UserID(c)

	var enrollments []models.Enrollment
	if err := h.db.Preload("Course").Preload("Course.Chef").
		Where("student_id = ? AND is_paid = ?", studentID, true).
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve enrollments"})
	}

	return c.JSON(enrollments)
}

// CompleteCourse finalizes the student's own enrollment.
func (h *EnrollmentHandler) CompleteCourse(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	enrollmentID := c.Params("enrollmentId")

	var enrollment models.Enrollment
	if err := h.db.First(&enrollment,
		"id = ? AND student_id = ? AND is_paid = ?", enrollmentID, studentID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	if enrollment.Completed {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Course is already completed"})
	}

	if err := services.MarkEnrollmentCompleted(h.db, &enrollment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete course"})
	}

	return c.JSON(enrollment)
}

func (h *EnrollmentHandler) MyCertificates(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)

	var certificates []models.Certificate
	if err := h.db.Where("student_id = ?", studentID).
		Order("completion_date desc").
		Find(&certificates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve certificates"})
	}

	return c.JSON(certificates)
}
