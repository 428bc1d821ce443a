package helper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kelas 7A", "kelas-7a"},
		{"  Café  Matemátika ", "cafe-matematika"},
		{"***", "item"},
		{"a--b__c", "a-b-c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in, 0), tt.in)
	}
	assert.Equal(t, "abc", Slugify("abcdef", 3))
}

func TestLessonSlug(t *testing.T) {
	assert.Equal(t, "kelas-7a-meeting-12", LessonSlug("Kelas 7A", 12))
}

func TestPGErrorMapping(t *testing.T) {
	pgx := &pgconn.PgError{Code: "40001"}
	wrapped := fmt.Errorf("commit: %w", pgx)

	assert.Equal(t, "40001", PGErrorCode(wrapped))
	assert.True(t, IsRetryablePGError(wrapped))
	assert.True(t, IsRetryablePGError(&pq.Error{Code: "40P01"}))
	assert.True(t, IsRetryablePGError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsRetryablePGError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsRetryablePGError(errors.New("plain")))

	status, _ := MapPGError(&pq.Error{Code: "23503"})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = MapPGError(pgx)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestValidatorFieldsUsesJSONNames(t *testing.T) {
	type item struct {
		Day *int `json:"dayOfWeek" validate:"required"`
	}
	type req struct {
		Items []item `json:"patterns" validate:"required,min=1,dive"`
	}

	err := NewValidator().Struct(req{Items: []item{{}}})
	fields := ValidatorFields(err)

	assert.Equal(t, []string{"required"}, fields["patterns[0].dayOfWeek"])
}
