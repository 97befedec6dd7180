package utils

import (
	"math/rand"
	"time"

	"gorm.io/gorm"
)

const receiptRefLength = 10
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueReceiptRef produces a payment reference not yet assigned to
// any enrollment.
func GenerateUniqueReceiptRef(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, receiptRefLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		ref := "RCP-" + string(b)

		var count int64
		if err := tx.Table("enrollments").Where("payment_id = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
}
