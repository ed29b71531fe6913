package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"quiz-assign/internal/catalog"
	"quiz-assign/internal/domain"
	"quiz-assign/internal/dto"
	"quiz-assign/internal/util"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
	maxTimeLimitLength   = 10 // assigned_quizzes.time_limit is NUMBER(10)
	maxDateTimeLength    = 32
	maxAudienceCode      = 20
)

var (
	validULID         = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	validAudienceCode = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID validates an assignment session id path parameter
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// ValidateSelectTemplateRequest validates the template index against the catalog size
func (v *Validator) ValidateSelectTemplateRequest(req *dto.SelectTemplateRequest, templateCount int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req == nil || req.Index == nil {
		errors = append(errors, domain.NewMissingFieldError("index"))
		return errors
	}
	if *req.Index < 0 || *req.Index >= templateCount {
		errors = append(errors, domain.NewOutOfRangeError("index", *req.Index, 0, templateCount-1))
	}

	return errors
}

// ValidateUpdateDetailsRequest checks field lengths. Time values are not checked here:
// text that is not a valid datetime-local is stored and later treated as unset.
func (v *Validator) ValidateUpdateDetailsRequest(req *dto.UpdateDetailsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req == nil {
		return errors
	}

	errors = appendIfTooLong(errors, "title", req.Title, maxTitleLength)
	errors = appendIfTooLong(errors, "description", req.Description, maxDescriptionLength)
	errors = appendIfTooLong(errors, "time_limit", req.TimeLimit, maxTimeLimitLength)
	errors = appendIfTooLong(errors, "start_time", req.StartTime, maxDateTimeLength)
	errors = appendIfTooLong(errors, "end_time", req.EndTime, maxDateTimeLength)

	return errors
}

// ValidateSetAudienceRequest validates audience codes. Programme and branch must be one
// of the offered options; an empty value clears the selection.
func (v *Validator) ValidateSetAudienceRequest(req *dto.SetAudienceRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req == nil {
		return errors
	}

	if req.Programme != nil && *req.Programme != "" && !isOption(catalog.ProgrammeOptions, *req.Programme) {
		errors = append(errors, domain.NewInvalidFormatError("programme", *req.Programme))
	}
	if req.Branch != nil && *req.Branch != "" && !isOption(catalog.BranchOptions, *req.Branch) {
		errors = append(errors, domain.NewInvalidFormatError("branch", *req.Branch))
	}
	if req.Section != nil && !isValidAudienceCode(*req.Section) {
		errors = append(errors, domain.NewInvalidFormatError("section", *req.Section))
	}
	if req.Group != nil && !isValidAudienceCode(*req.Group) {
		errors = append(errors, domain.NewInvalidFormatError("group", *req.Group))
	}

	return errors
}

// Helper functions for validation

func appendIfTooLong(errors domain.ValidationErrors, field string, value *string, max int) domain.ValidationErrors {
	if value == nil {
		return errors
	}
	if n := utf8.RuneCountInString(*value); n > max {
		return append(errors, domain.NewOutOfRangeError(field, n, 0, max))
	}
	return errors
}

// isValidULID checks if the string is an upper-case ULID that also decodes
func isValidULID(s string) bool {
	return validULID.MatchString(s) && util.IsULID(s)
}

// isValidAudienceCode allows an empty value or 1-20 alphanumerics, hyphens and underscores
func isValidAudienceCode(s string) bool {
	if s == "" {
		return true
	}
	if len(s) > maxAudienceCode {
		return false
	}
	return validAudienceCode.MatchString(s)
}

func isOption(options []catalog.Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
