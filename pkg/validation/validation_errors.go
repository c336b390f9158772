package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":           "Name",
	"Email":          "Email",
	"Password":       "Password",
	"Address":        "Address",
	"Telephone":      "Telephone number",
	"LinkedinURL":    "LinkedIn URL",
	"Biography":      "Biography",
	"TermsAccepted":  "Terms and conditions",
	"CV":             "CV",
	"Title":          "Title",
	"Description":    "Description",
	"Requirements":   "Requirements",
	"Location":       "Location",
	"Salary":         "Salary",
	"Duration":       "Duration",
	"Stipend":        "Stipend",
	"Status":         "Status",
	"Type":           "Type",
	"Priority":       "Priority",
	"Message":        "Message",
	"TargetAudience": "Target audience",
	"PlanType":       "Plan type",
	"PlanName":       "Plan name",
	"Price":          "Price",
	"BillingCycle":   "Billing cycle",
	"PaymentMethod":  "Payment method",
	"CoverLetter":    "Cover letter",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot exceed %s characters", label, param)
		}
		return fmt.Sprintf("%s cannot exceed %s", label, param)
	case "gte":
		return fmt.Sprintf("%s cannot be less than %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "email":
		return "Please enter a valid email"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation", label)
	case "valid_phone":
		return "Please enter a valid telephone number"
	case "linkedin_url":
		return "Please enter a valid LinkedIn URL"
	case "eq":
		return fmt.Sprintf("%s must be accepted", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
