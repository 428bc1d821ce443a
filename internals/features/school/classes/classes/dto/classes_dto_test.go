package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassCreateRequest(t *testing.T) {
	slug := "7a-pagi"
	r := ClassCreateRequest{ClassSemesterID: 1, ClassName: "  Kelas 7A "}
	assert.Equal(t, "Kelas 7A", r.ToModel().ClassName)
	assert.True(t, r.ToModel().ClassIsActive)
	assert.Equal(t, "  Kelas 7A ", r.BaseSlug())

	r.ClassSlug = &slug
	assert.Equal(t, "7a-pagi", r.BaseSlug())
}
