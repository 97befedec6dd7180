package handlers

import (
	"strings"

	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseHandler struct {
	db *gorm.DB
}

func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{db: db}
}

type CourseRequest struct {
	Title            string  `json:"title" validate:"required,min=3,max=200"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description" validate:"max=300"`
	ThumbnailURL     *string `json:"thumbnail_url"`
	PriceCents       int64   `json:"price_cents" validate:"gte=0"`
	Level            string  `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	DurationHours    int     `json:"duration_hours" validate:"gte=0"`
	IsPublished      bool    `json:"is_published"`
}

// ListCourses lists published courses, newest first. Optional q matches a
// case-insensitive substring of the title, description, or chef username;
// optional level is an exact match.
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	query := h.db.Model(&models.Course{}).
		Joins("JOIN users ON users.id = courses.chef_id").
		Where("courses.is_published = ?", true).
		Preload("Chef")

	if q := c.Query("q"); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(courses.title) LIKE ? OR LOWER(courses.description) LIKE ? OR LOWER(users.username) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if level := c.Query("level"); level != "" {
		query = query.Where("courses.level = ?", level)
	}

	var courses []models.Course
	if err := query.Order("courses.created_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve courses"})
	}

	return c.JSON(courses)
}

// GetCourse returns a published course by slug, with its classes, public
// recipes and books, and whether the caller holds a paid enrollment.
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course models.Course
	if err := h.db.Preload("Chef").
		First(&course, "slug = ? AND is_published = ?", slug, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var classes []models.Class
	h.db.Where("course_id = ?", course.ID).
		Order("position asc, created_at asc").
		Find(&classes)

	var recipes []models.Recipe
	h.db.Where("course_id = ? AND is_public = ?", course.ID, true).Find(&recipes)

	var books []models.Book
	h.db.Where("course_id = ? AND is_public = ?", course.ID, true).Find(&books)

	isEnrolled := false
	if userID := optionalUserID(c); userID != uuid.Nil {
		var count int64
		h.db.Model(&models.Enrollment{}).
			Where("student_id = ? AND course_id = ? AND is_paid = ?", userID, course.ID, true).
			Count(&count)
		isEnrolled = count > 0
	}

	totalDuration, _ := course.TotalDurationMinutes(h.db)
	enrolledCount, _ := course.EnrolledCount(h.db)

	return c.JSON(fiber.Map{
		"course":                 course,
		"classes":                classes,
		"recipes":                recipes,
		"books":                  books,
		"is_enrolled":            isEnrolled,
		"enrolled_count":         enrolledCount,
		"total_duration_minutes": totalDuration,
	})
}

// Dashboard is the chef's control panel: latest catalog entries and
// headline numbers.
func (h *CourseHandler) Dashboard(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)

	var courses []models.Course
	h.db.Where("chef_id = ?", chefID).Order("created_at desc").Limit(5).Find(&courses)

	var recipes []models.Recipe
	h.db.Where("chef_id = ?", chefID).Order("created_at desc").Limit(5).Find(&recipes)

	var books []models.Book
	h.db.Where("chef_id = ?", chefID).Order("created_at desc").Limit(5).Find(&books)

	var totalCourses, publishedCourses, totalStudents int64
	h.db.Model(&models.Course{}).Where("chef_id = ?", chefID).Count(&totalCourses)
	h.db.Model(&models.Course{}).Where("chef_id = ? AND is_published = ?", chefID, true).Count(&publishedCourses)
	h.db.Model(&models.Enrollment{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.chef_id = ? AND enrollments.is_paid = ?", chefID, true).
		Distinct("enrollments.student_id").
		Count(&totalStudents)

	return c.JSON(fiber.Map{
		"courses":           courses,
		"recipes":           recipes,
		"books":             books,
		"total_courses":     totalCourses,
		"published_courses": publishedCourses,
		"total_students":    totalStudents,
	})
}

// MyCourses lists every course owned by the chef, with per-course
// aggregates.
func (h *CourseHandler) MyCourses(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)

	var courses []models.Course
	if err := h.db.Where("chef_id = ?", chefID).Order("created_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve courses"})
	}

	type courseSummary struct {
		models.Course
		EnrolledCount     int64 `json:"enrolled_count"`
		TotalRevenueCents int64 `json:"total_revenue_cents"`
	}

	summaries := make([]courseSummary, 0, len(courses))
	for i := range courses {
		enrolled, _ := courses[i].EnrolledCount(h.db)
		revenue, _ := courses[i].TotalRevenueCents(h.db)
		summaries = append(summaries, courseSummary{
			Course:            courses[i],
			EnrolledCount:     enrolled,
			TotalRevenueCents: revenue,
		})
	}

	return c.JSON(summaries)
}

func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var course models.Course
	err := utils.SaveWithUniqueSlug(h.db, "courses", req.Title, func(slug string) error {
		course = models.Course{
			ChefID:           chefID,
			Title:            req.Title,
			Slug:             slug,
			Description:      req.Description,
			ShortDescription: req.ShortDescription,
			ThumbnailURL:     req.ThumbnailURL,
			PriceCents:       req.PriceCents,
			Level:            req.Level,
			DurationHours:    req.DurationHours,
			IsPublished:      req.IsPublished,
		}
		return h.db.Create(&course).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// UpdateCourse edits a course the chef owns. The slug is assigned once at
// creation and never recomputed, even when the title changes.
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	slug := c.Params("slug")

	var course models.Course
	if err := h.db.First(&course, "slug = ? AND chef_id = ?", slug, chefID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course.Title = req.Title
	course.Description = req.Description
	course.ShortDescription = req.ShortDescription
	course.ThumbnailURL = req.ThumbnailURL
	course.PriceCents = req.PriceCents
	course.Level = req.Level
	course.DurationHours = req.DurationHours
	course.IsPublished = req.IsPublished

	if err := h.db.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	return c.JSON(course)
}

// DeleteCourse removes a course the chef owns along with its classes,
// enrollments, per-class progress and reviews. Linked recipes and books
// survive with their course reference cleared.
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	slug := c.Params("slug")

	var course models.Course
	if err := h.db.First(&course, "slug = ? AND chef_id = ?", slug, chefID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enrollment_id IN (?)",
			tx.Model(&models.Enrollment{}).Select("id").Where("course_id = ?", course.ID),
		).Delete(&models.ClassProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Class{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Recipe{}).Where("course_id = ?", course.ID).
			Update("course_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Book{}).Where("course_id = ?", course.ID).
			Update("course_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}

	return c.JSON(fiber.Map{"message": "Course \"" + course.Title + "\" deleted successfully"})
}
