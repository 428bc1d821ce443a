package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

const DefaultSlugMaxLen = 160

// Slugify mengubah teks bebas jadi slug [a-z0-9-], hilangkan diakritik,
// kompres "-", trim ujung, batasi maxLen (default 160), fallback "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// é → e
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// LessonSlug: "<class-slug>-meeting-<n>"
func LessonSlug(classSlug string, meeting int) string {
	suffix := fmt.Sprintf("-meeting-%d", meeting)
	base := Slugify(classSlug, DefaultSlugMaxLen-len(suffix))
	return base + suffix
}

// EnsureUniqueSlugCI memastikan slug unik (case-insensitive) di satu tabel/kolom.
// scopeFn boleh nil; kalau tidak nil, dipakai untuk menambah WHERE (mis. per semester).
func EnsureUniqueSlugCI(
	ctx context.Context,
	db *gorm.DB,
	table string,
	column string,
	baseSlug string,
	scopeFn func(*gorm.DB) *gorm.DB,
) (string, error) {
	slug := baseSlug
	for i := 0; i < 25; i++ {
		q := db.WithContext(ctx).Table(table)
		if scopeFn != nil {
			q = scopeFn(q)
		}

		var count int64
		if err := q.Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(slug)).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		suffix := fmt.Sprintf("-%d", i+2)
		slug = Slugify(baseSlug, DefaultSlugMaxLen-len(suffix)) + suffix
	}
	return "", fmt.Errorf("slug %q: terlalu banyak duplikat", baseSlug)
}
