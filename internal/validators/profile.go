package validators

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

// Field names of profile, experience and education payloads.
const (
	FieldHandle       = "handle"
	FieldStatus       = "status"
	FieldSkills       = "skills"
	FieldWebsite      = "website"
	FieldYoutube      = "youtube"
	FieldTwitter      = "twitter"
	FieldFacebook     = "facebook"
	FieldLinkedin     = "linkedin"
	FieldInstagram    = "instagram"
	FieldTitle        = "title"
	FieldCompany      = "company"
	FieldSchool       = "school"
	FieldDegree       = "degree"
	FieldFieldOfStudy = "fieldofstudy"
	FieldFrom         = "from"
	FieldTo           = "to"
)

const (
	handleMinLength = 2
	handleMaxLength = 40
	notAValidURL    = "Not a valid URL"
)

// ProfileValidator validates profile payloads and the experience and
// education entries appended to a profile.
type ProfileValidator struct {
}

// NewProfileValidator constructs a new ProfileValidator
// and returns it as the Validator interface.
func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileRequest:
		return v.validateProfile(value, fields...)
	case *models.ProfileRequest:
		return v.validateProfile(*value, fields...)

	case models.ExperienceRequest:
		return v.validateExperience(value, fields...)
	case *models.ExperienceRequest:
		return v.validateExperience(*value, fields...)

	case models.EducationRequest:
		return v.validateEducation(value, fields...)
	case *models.EducationRequest:
		return v.validateEducation(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateProfile(req models.ProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldHandle, FieldStatus, FieldSkills, FieldWebsite,
			FieldYoutube, FieldTwitter, FieldFacebook, FieldLinkedin, FieldInstagram,
		}
	}

	links := map[string]string{
		FieldWebsite:   req.Website,
		FieldYoutube:   req.Youtube,
		FieldTwitter:   req.Twitter,
		FieldFacebook:  req.Facebook,
		FieldLinkedin:  req.Linkedin,
		FieldInstagram: req.Instagram,
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldHandle:
			if isEmpty(req.Handle) {
				errs.add(FieldHandle, "Profile handle is required")
			} else if !lengthBetween(req.Handle, handleMinLength, handleMaxLength) {
				errs.add(FieldHandle, "Handle needs to be between 2 and 40 characters")
			}
		case FieldStatus:
			if isEmpty(req.Status) {
				errs.add(FieldStatus, "Status field is required")
			}
		case FieldSkills:
			if isEmpty(req.Skills) {
				errs.add(FieldSkills, "Skills field is required")
			}
		case FieldWebsite, FieldYoutube, FieldTwitter, FieldFacebook, FieldLinkedin, FieldInstagram:
			if link := links[f]; !isEmpty(link) && !isURL(link) {
				errs.add(f, notAValidURL)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func (v *ProfileValidator) validateExperience(req models.ExperienceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCompany, FieldFrom, FieldTo}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isEmpty(req.Title) {
				errs.add(FieldTitle, "Job title field is required")
			}
		case FieldCompany:
			if isEmpty(req.Company) {
				errs.add(FieldCompany, "Company field is required")
			}
		case FieldFrom:
			checkFromDate(errs, req.From)
		case FieldTo:
			checkDateRange(errs, req.From, req.To)
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func (v *ProfileValidator) validateEducation(req models.EducationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSchool, FieldDegree, FieldFieldOfStudy, FieldFrom, FieldTo}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldSchool:
			if isEmpty(req.School) {
				errs.add(FieldSchool, "School field is required")
			}
		case FieldDegree:
			if isEmpty(req.Degree) {
				errs.add(FieldDegree, "Degree field is required")
			}
		case FieldFieldOfStudy:
			if isEmpty(req.FieldOfStudy) {
				errs.add(FieldFieldOfStudy, "Field of study field is required")
			}
		case FieldFrom:
			checkFromDate(errs, req.From)
		case FieldTo:
			checkDateRange(errs, req.From, req.To)
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}

func checkFromDate(errs FieldErrors, from models.Date) {
	switch {
	case from.Malformed():
		errs.add(FieldFrom, "From date is not a valid date")
	case from.IsZero():
		errs.add(FieldFrom, "From date field is required")
	}
}

func checkDateRange(errs FieldErrors, from models.Date, to *models.Date) {
	if to != nil && to.Malformed() {
		errs.add(FieldTo, "To date is not a valid date")
		return
	}
	if to == nil || to.IsZero() || from.IsZero() {
		return
	}
	if to.Before(from.Time) {
		errs.add(FieldTo, "To date must not be before from date")
	}
}
