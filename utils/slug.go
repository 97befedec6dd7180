package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const slugSaveAttempts = 3

// Slugify turns a free-form title into a URL-safe slug: lower-case, runs of
// non-alphanumerics collapsed into single hyphens, hyphens trimmed from both
// ends.
func Slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	lastHyphen := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// UniqueSlug probes table for the first free slug among base, base-1,
// base-2, … Uniqueness holds only at the moment of the probe; concurrent
// savers are sorted out by the unique index and the retry in
// SaveWithUniqueSlug.
func UniqueSlug(db *gorm.DB, table, base string) (string, error) {
	if base == "" {
		base = "untitled"
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		var count int64
		if err := db.Table(table).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

// SaveWithUniqueSlug derives a free slug from title, hands it to create, and
// retries with a freshly derived slug when the storage layer reports a
// duplicate key. Two simultaneous saves of the same title can both observe
// the same free slug; the unique index rejects the loser and the next
// attempt picks the following suffix.
func SaveWithUniqueSlug(db *gorm.DB, table, title string, create func(slug string) error) error {
	base := Slugify(title)

	var err error
	for attempt := 0; attempt < slugSaveAttempts; attempt++ {
		var slug string
		slug, err = UniqueSlug(db, table, base)
		if err != nil {
			return err
		}

		err = create(slug)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}
