package handlers_test

import (
	"strings"
	"testing"

	"github.com/chefacademy/culinary_platform/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func publishCourse(t *testing.T, db *gorm.DB, chef models.User, title, slug string, priceCents int64) models.Course {
	course := models.Course{
		ChefID:      chef.ID,
		Title:       title,
		Slug:        slug,
		PriceCents:  priceCents,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestEnrollAndConfirmPayment(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	_, studentToken := createUser(t, db, "anna", models.RoleStudent)
	publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)

	resp := doRequest(t, app, "POST", "/api/v1/courses/italian-basics/enroll", studentToken, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	enrollment := decodeBody(t, resp)
	enrollmentID := enrollment["id"].(string)
	assert.Equal(t, false, enrollment["is_paid"])

	resp = doRequest(t, app, "POST", "/api/v1/enrollments/"+enrollmentID+"/pay", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	paid := decodeBody(t, resp)
	assert.Equal(t, true, paid["is_paid"])
	assert.Equal(t, float64(4999), paid["amount_paid_cents"])
	assert.True(t, strings.HasPrefix(paid["payment_id"].(string), "RCP-"))

	// Paying twice is a conflict.
	resp = doRequest(t, app, "POST", "/api/v1/enrollments/"+enrollmentID+"/pay", studentToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	_, studentToken := createUser(t, db, "anna", models.RoleStudent)
	publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)

	resp := doRequest(t, app, "POST", "/api/v1/courses/italian-basics/enroll", studentToken, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/v1/courses/italian-basics/enroll", studentToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestEnrollRejectsDrafts(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	_, studentToken := createUser(t, db, "anna", models.RoleStudent)

	draft := models.Course{ChefID: chef.ID, Title: "Draft", Slug: "draft"}
	require.NoError(t, db.Create(&draft).Error)

	resp := doRequest(t, app, "POST", "/api/v1/courses/draft/enroll", studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMyCoursesRedirectsChefsToDashboard(t *testing.T) {
	app, db := newTestApp(t)
	_, chefToken := createUser(t, db, "marco", models.RoleChef)

	resp := doRequest(t, app, "GET", "/api/v1/my-courses", chefToken, nil)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/api/v1/chef/dashboard", resp.Header.Get("Location"))
}

func TestMyCoursesListsPaidEnrollmentsOnly(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	paidCourse := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	unpaidCourse := publishCourse(t, db, chef, "French Pastry", "french-pastry", 3000)

	require.NoError(t, db.Create(&models.Enrollment{
		StudentID: student.ID, CourseID: paidCourse.ID, IsPaid: true, AmountPaidCents: 4999,
	}).Error)
	require.NoError(t, db.Create(&models.Enrollment{
		StudentID: student.ID, CourseID: unpaidCourse.ID,
	}).Error)

	resp := doRequest(t, app, "GET", "/api/v1/my-courses", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrollments := decodeList(t, resp)
	require.Len(t, enrollments, 1)
	assert.Equal(t, paidCourse.ID.String(), enrollments[0]["course_id"])
}

func TestCompleteCourse(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)

	enrollment := models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, IsPaid: true, AmountPaidCents: 4999,
	}
	require.NoError(t, db.Create(&enrollment).Error)

	resp := doRequest(t, app, "POST", "/api/v1/enrollments/"+enrollment.ID.String()+"/complete", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["completed"])
	assert.Equal(t, float64(100), body["progress_percentage"])

	resp = doRequest(t, app, "POST", "/api/v1/enrollments/"+enrollment.ID.String()+"/complete", studentToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
