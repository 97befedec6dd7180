package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateUniqueReceiptRef(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(
		"CREATE TABLE enrollments (id INTEGER PRIMARY KEY AUTOINCREMENT, payment_id TEXT)",
	).Error)

	ref, err := GenerateUniqueReceiptRef(db)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "RCP-"))
	assert.Len(t, ref, len("RCP-")+receiptRefLength)

	require.NoError(t, db.Exec("INSERT INTO enrollments (payment_id) VALUES (?)", ref).Error)

	other, err := GenerateUniqueReceiptRef(db)
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)
}
