package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// Sri Lankan mobile number: optional +94 or leading 0, then 7 and 8 digits
	phoneRegex = regexp.MustCompile(`^(?:\+94|0)?7\d{8}$`)

	// LinkedIn company or personal profile URL
	linkedinRegex = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/(company|in)/[a-zA-Z0-9-_/]+/?$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("linkedin_url", LinkedinURL)
}

// ValidName validates that a string contains only valid name characters
// Rejects most special symbols
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a Sri Lankan mobile number
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// LinkedinURL validates a LinkedIn profile or company page URL
func LinkedinURL(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return linkedinRegex.MatchString(val)
}
