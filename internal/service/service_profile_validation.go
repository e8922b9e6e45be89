package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
)

// ProfileValidationService validates profile, experience and education
// payloads before they reach the wrapped ProfileService.
type ProfileValidationService struct {
	ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewProfileValidator(),
	}
}

func (v *ProfileValidationService) SaveProfile(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}
	return v.ProfileService.SaveProfile(ctx, userID, req)
}

func (v *ProfileValidationService) AddExperience(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}
	return v.ProfileService.AddExperience(ctx, userID, req)
}

func (v *ProfileValidationService) AddEducation(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}
	return v.ProfileService.AddEducation(ctx, userID, req)
}

func (v *ProfileValidationService) Wrap(inner ProfileService) ProfileService {
	v.ProfileService = inner
	return v
}
