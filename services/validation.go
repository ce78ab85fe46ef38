package services

import (
	"regexp"
	"strings"

	"codewithbuder/dto"
)

// local@domain.tld, with no whitespace or extra "@" in any part.
var contactEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCourseForm returns a field -> message map for failing fields
// only; an absent key means the field is valid.
func ValidateCourseForm(form dto.AddCourseRequest) map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(form.Title) == "" {
		errors["title"] = "Course Title is required"
	}
	if strings.TrimSpace(form.Category) == "" {
		errors["category"] = "Category is required"
	}
	if strings.TrimSpace(form.Description) == "" {
		errors["description"] = "Course Description is required"
	}
	return errors
}

func ValidateContactForm(form dto.ContactRequest) map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(form.Name) == "" {
		errors["name"] = "Name is required"
	}
	if strings.TrimSpace(form.Email) == "" || !contactEmailPattern.MatchString(form.Email) {
		errors["email"] = "A valid email is required"
	}
	if strings.TrimSpace(form.Message) == "" {
		errors["message"] = "Message is required"
	}
	return errors
}

// ClearFieldError returns a copy of errors with the named field's message
// reset to empty; other entries are untouched. Used to clear an error as
// the user edits that field.
func ClearFieldError(errors map[string]string, field string) map[string]string {
	out := make(map[string]string, len(errors)+1)
	for k, v := range errors {
		out[k] = v
	}
	out[field] = ""
	return out
}
