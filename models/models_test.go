package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&User{},
		&Course{},
		&Class{},
		&Recipe{},
		&Book{},
		&Enrollment{},
		&ClassProgress{},
		&Review{},
		&Certificate{},
	))
	return db
}

func createChef(t *testing.T, db *gorm.DB, username string) User {
	chef := User{Username: username, Email: username + "@example.com", Password: "x", Role: RoleChef}
	require.NoError(t, db.Create(&chef).Error)
	return chef
}

func createStudent(t *testing.T, db *gorm.DB, username string) User {
	student := User{Username: username, Email: username + "@example.com", Password: "x", Role: RoleStudent}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func createCourse(t *testing.T, db *gorm.DB, chef User, title, slug string) Course {
	course := Course{ChefID: chef.ID, Title: title, Slug: slug, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	return course
}
