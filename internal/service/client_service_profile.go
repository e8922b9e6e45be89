package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter}
}

func (p *clientProfileService) CurrentProfile(ctx context.Context) (models.Profile, error) {
	profile, err := p.adapter.GetCurrentProfile(ctx)
	return profile, mapAdapterError(err)
}

func (p *clientProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := p.adapter.ListProfiles(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return profiles, nil
}

func (p *clientProfileService) SaveProfile(ctx context.Context, req models.ProfileRequest) (models.Profile, error) {
	profile, err := p.adapter.SaveProfile(ctx, req)
	return profile, mapAdapterError(err)
}

func (p *clientProfileService) AddExperience(ctx context.Context, req models.ExperienceRequest) (models.Profile, error) {
	profile, err := p.adapter.AddExperience(ctx, req)
	return profile, mapAdapterError(err)
}

func (p *clientProfileService) DeleteExperience(ctx context.Context, expID string) (models.Profile, error) {
	profile, err := p.adapter.DeleteExperience(ctx, expID)
	return profile, mapAdapterError(err)
}

func (p *clientProfileService) AddEducation(ctx context.Context, req models.EducationRequest) (models.Profile, error) {
	profile, err := p.adapter.AddEducation(ctx, req)
	return profile, mapAdapterError(err)
}

func (p *clientProfileService) DeleteEducation(ctx context.Context, eduID string) (models.Profile, error) {
	profile, err := p.adapter.DeleteEducation(ctx, eduID)
	return profile, mapAdapterError(err)
}
