package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func enroll(t *testing.T, db *gorm.DB, student User, course Course, paid bool, amountCents int64) Enrollment {
	e := Enrollment{
		StudentID:       student.ID,
		CourseID:        course.ID,
		IsPaid:          paid,
		AmountPaidCents: amountCents,
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func TestEnrolledCountCountsPaidOnly(t *testing.T) {
	db := openTestDB(t)
	chef := createChef(t, db, "marco")
	course := createCourse(t, db, chef, "Italian Basics", "italian-basics")

	enroll(t, db, createStudent(t, db, "anna"), course, true, 4999)
	enroll(t, db, createStudent(t, db, "ben"), course, true, 4999)
	enroll(t, db, createStudent(t, db, "cara"), course, false, 0)

	count, err := course.EnrolledCount(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTotalRevenueSumsPaidAmountsExactly(t *testing.T) {
	db := openTestDB(t)
	chef := createChef(t, db, "marco")
	course := createCourse(t, db, chef, "Italian Basics", "italian-basics")

	// 49.99 + 30.00 must come out as exactly 79.99.
	enroll(t, db, createStudent(t, db, "anna"), course, true, 4999)
	enroll(t, db, createStudent(t, db, "ben"), course, true, 3000)
	enroll(t, db, createStudent(t, db, "cara"), course, false, 9999)

	total, err := course.TotalRevenueCents(db)
	require.NoError(t, err)
	assert.Equal(t, int64(7999), total)
}

func TestTotalRevenueZeroWithoutEnrollments(t *testing.T) {
	db := openTestDB(t)
	chef := createChef(t, db, "marco")
	course := createCourse(t, db, chef, "Italian Basics", "italian-basics")

	total, err := course.TotalRevenueCents(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestTotalDurationSumsClassMinutes(t *testing.T) {
	db := openTestDB(t)
	chef := createChef(t, db, "marco")
	course := createCourse(t, db, chef, "Italian Basics", "italian-basics")

	for i, minutes := range []int{15, 25, 40} {
		class := Class{CourseID: course.ID, Title: "Lesson", Position: i + 1, DurationMinutes: minutes}
		require.NoError(t, db.Create(&class).Error)
	}

	total, err := course.TotalDurationMinutes(db)
	require.NoError(t, err)
	assert.Equal(t, int64(80), total)

	empty := createCourse(t, db, chef, "Empty", "empty")
	total, err = empty.TotalDurationMinutes(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
