package handlers_test

import (
	"testing"

	"github.com/chefacademy/culinary_platform/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func payEnrollment(t *testing.T, db *gorm.DB, student models.User, course models.Course) {
	require.NoError(t, db.Create(&models.Enrollment{
		StudentID: student.ID, CourseID: course.ID, IsPaid: true, AmountPaidCents: course.PriceCents,
	}).Error)
}

func TestCreateReviewRequiresPaidEnrollment(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	_, studentToken := createUser(t, db, "anna", models.RoleStudent)
	publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)

	resp := doRequest(t, app, "POST", "/api/v1/courses/italian-basics/reviews", studentToken, map[string]interface{}{
		"rating":  5,
		"comment": "Great course",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateReviewOncePerCourse(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	payEnrollment(t, db, student, course)

	payload := map[string]interface{}{"rating": 5, "title": "Loved it", "comment": "Great course"}
	resp := doRequest(t, app, "POST", "/api/v1/courses/italian-basics/reviews", studentToken, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/v1/courses/italian-basics/reviews", studentToken, payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCreateReviewValidatesRating(t *testing.T) {
	app, db := newTestApp(t)
	chef, _ := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	payEnrollment(t, db, student, course)

	for _, rating := range []int{0, 6, -1} {
		resp := doRequest(t, app, "POST", "/api/v1/courses/italian-basics/reviews", studentToken, map[string]interface{}{
			"rating": rating,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "rating %d", rating)
	}
}

func TestHiddenReviewsDropOutOfPublicListing(t *testing.T) {
	app, db := newTestApp(t)
	chef, chefToken := createUser(t, db, "marco", models.RoleChef)
	student, studentToken := createUser(t, db, "anna", models.RoleStudent)
	course := publishCourse(t, db, chef, "Italian Basics", "italian-basics", 4999)
	payEnrollment(t, db, student, course)

	resp := doRequest(t, app, "POST", "/api/v1/courses/italian-basics/reviews", studentToken, map[string]interface{}{
		"rating": 2, "comment": "Too salty",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	reviewID := decodeBody(t, resp)["id"].(string)

	resp = doRequest(t, app, "GET", "/api/v1/courses/italian-basics/reviews", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, decodeList(t, resp), 1)

	// Chefs pass the admin gate, so the owning chef can moderate.
	resp = doRequest(t, app, "PUT", "/api/v1/admin/reviews/"+reviewID, chefToken, map[string]interface{}{
		"action": "hide",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/v1/courses/italian-basics/reviews", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 0)
}

func TestAdminRoutesRedirectStudents(t *testing.T) {
	app, db := newTestApp(t)
	_, studentToken := createUser(t, db, "anna", models.RoleStudent)

	resp := doRequest(t, app, "GET", "/api/v1/admin/users", studentToken, nil)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/?message=")
}
