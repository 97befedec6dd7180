package handlers_test

import (
	"testing"

	"github.com/chefacademy/culinary_platform/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func addClass(t *testing.T, db *gorm.DB, course models.Course, title string, position int) models.Class {
	class := models.Class{CourseID: course.ID, Title: title, Position: position, DurationMinutes: 20}
	require.NoError(t, db.Create(&class).Error)
	return class
}

func TestGetClassRequiresPaidEnrollment(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	_, outsiderToken := createUser(t, db, "drifter", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	class := addClass(t, db, course, "Pasta Dough", 1)

	resp := doRequest(t, app, "GET", "/api/v1/classes/"+class.ID.String(), outsiderToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetClassReturnsNeighbours(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	payEnrollment(t, db, student, course)

	first := addClass(t, db, course, "Pasta Dough", 1)
	second := addClass(t, db, course, "Rolling", 2)
	third := addClass(t, db, course, "Plating", 3)

	resp := doRequest(t, app, "GET", "/api/v1/classes/"+second.ID.String(), studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	next := body["next"].(map[string]interface{})
	prev := body["previous"].(map[string]interface{})
	assert.Equal(t, third.ID.String(), next["id"])
	assert.Equal(t, first.ID.String(), prev["id"])

	// The endpoints are nil at the edges.
	resp = doRequest(t, app, "GET", "/api/v1/classes/"+first.ID.String(), studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Nil(t, body["previous"])
}

func TestCompleteClassCreatesProgressRow(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	payEnrollment(t, db, student, course)
	class := addClass(t, db, course, "Pasta Dough", 1)

	resp := doRequest(t, app, "POST", "/api/v1/classes/"+class.ID.String()+"/complete", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["is_completed"])

	// Completing an unfinished course never moves the stored percentage.
	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, "student_id = ? AND course_id = ?", student.ID, course.ID).Error)
	assert.Equal(t, 0, enrollment.ProgressPercentage)
}

func TestUpdateClassProgressAccumulatesTime(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	payEnrollment(t, db, student, course)
	class := addClass(t, db, course, "Pasta Dough", 1)

	resp := doRequest(t, app, "PUT", "/api/v1/classes/"+class.ID.String()+"/progress", studentToken, map[string]interface{}{
		"time_spent_minutes":    10,
		"last_position_seconds": 90,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "PUT", "/api/v1/classes/"+class.ID.String()+"/progress", studentToken, map[string]interface{}{
		"time_spent_minutes":    5,
		"last_position_seconds": 240,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(15), body["time_spent_minutes"])
	assert.Equal(t, float64(240), body["last_position_seconds"])
}

func TestGetCourseProgressCounts(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	payEnrollment(t, db, student, course)

	first := addClass(t, db, course, "Pasta Dough", 1)
	addClass(t, db, course, "Rolling", 2)
	addClass(t, db, course, "Plating", 3)

	resp := doRequest(t, app, "POST", "/api/v1/classes/"+first.ID.String()+"/complete", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/v1/courses/italian-basics/progress", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["completed_classes"])
	assert.Equal(t, float64(3), body["total_classes"])
}
