package services

import (
	"testing"

	"codewithbuder/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateCourseFormMissingTitleOnly(t *testing.T) {
	errs := ValidateCourseForm(dto.AddCourseRequest{
		Title:       "",
		Category:    "backend",
		Description: "An introduction to Go.",
	})

	assert.Equal(t, map[string]string{"title": "Course Title is required"}, errs)
}

func TestValidateCourseFormAllMissing(t *testing.T) {
	errs := ValidateCourseForm(dto.AddCourseRequest{})

	assert.Equal(t, map[string]string{
		"title":       "Course Title is required",
		"category":    "Category is required",
		"description": "Course Description is required",
	}, errs)
}

func TestValidateCourseFormWhitespaceIsBlank(t *testing.T) {
	errs := ValidateCourseForm(dto.AddCourseRequest{
		Title:       "   ",
		Category:    "backend",
		Description: "An introduction to Go.",
	})

	assert.Equal(t, map[string]string{"title": "Course Title is required"}, errs)
}

func TestValidateCourseFormValid(t *testing.T) {
	errs := ValidateCourseForm(dto.AddCourseRequest{
		Title:       "Go Basics",
		Category:    "backend",
		Description: "An introduction to Go.",
	})

	assert.Empty(t, errs)
}

func TestValidateContactFormBadEmailOnly(t *testing.T) {
	errs := ValidateContactForm(dto.ContactRequest{
		Name:    "Ann",
		Email:   "not-an-email",
		Message: "Hello",
	})

	assert.Equal(t, map[string]string{"email": "A valid email is required"}, errs)
}

func TestValidateContactFormEmailEdgeCases(t *testing.T) {
	cases := map[string]bool{
		"ann@example.com":     true,
		"a.b+c@sub.domain.io": true,
		"":                    false,
		"ann@example":         false,
		"ann example@x.com":   false,
		"ann@@example.com":    false,
		"@example.com":        false,
		"ann@.com":            false,
	}

	for email, valid := range cases {
		errs := ValidateContactForm(dto.ContactRequest{Name: "Ann", Email: email, Message: "Hi"})
		if valid {
			assert.NotContains(t, errs, "email", "email %q should pass", email)
		} else {
			assert.Contains(t, errs, "email", "email %q should fail", email)
		}
	}
}

func TestValidateContactFormAllMissing(t *testing.T) {
	errs := ValidateContactForm(dto.ContactRequest{})

	assert.Equal(t, map[string]string{
		"name":    "Name is required",
		"email":   "A valid email is required",
		"message": "Message is required",
	}, errs)
}

func TestClearFieldErrorClearsOnlyNamedField(t *testing.T) {
	errs := map[string]string{
		"title":    "Course Title is required",
		"category": "Category is required",
	}

	cleared := ClearFieldError(errs, "title")
	assert.Equal(t, "", cleared["title"])
	assert.Equal(t, "Category is required", cleared["category"])

	// The input map is not mutated.
	assert.Equal(t, "Course Title is required", errs["title"])
}

func TestClearFieldErrorUnknownField(t *testing.T) {
	cleared := ClearFieldError(map[string]string{"name": "Name is required"}, "email")

	assert.Equal(t, "", cleared["email"])
	assert.Equal(t, "Name is required", cleared["name"])
}
