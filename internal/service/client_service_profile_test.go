package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/mock"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientProfileService_CurrentProfile_NoProfile(t *testing.T) {
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := NewClientProfileService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().GetCurrentProfile(ctx).Return(models.Profile{},
		&adapter.APIError{Status: 404, Fields: map[string]string{"noprofile": "There is no profile for this user"}})

	_, err := svc.CurrentProfile(ctx)
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
	assert.Contains(t, err.Error(), "There is no profile for this user")
}

func TestClientProfileService_Education(t *testing.T) {
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := NewClientProfileService(mockAdapter)
	ctx := context.Background()

	req := models.EducationRequest{School: "UCL", Degree: "BSc", FieldOfStudy: "Maths", Current: true}
	withEntry := models.Profile{Handle: "ada", Education: []models.Education{{ID: "ed1", School: "UCL"}}}

	gomock.InOrder(
		mockAdapter.EXPECT().AddEducation(ctx, req).Return(withEntry, nil),
		mockAdapter.EXPECT().DeleteEducation(ctx, "ed1").Return(models.Profile{Handle: "ada"}, nil),
	)

	profile, err := svc.AddEducation(ctx, req)
	require.NoError(t, err)
	assert.Len(t, profile.Education, 1)

	profile, err = svc.DeleteEducation(ctx, "ed1")
	require.NoError(t, err)
	assert.Empty(t, profile.Education)
}

func TestClientProfileService_SaveProfile_FieldErrors(t *testing.T) {
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := NewClientProfileService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().SaveProfile(ctx, gomock.Any()).Return(models.Profile{},
		&adapter.APIError{Status: 400, Fields: map[string]string{"handle": "That handle already exists"}})

	_, err := svc.SaveProfile(ctx, models.ProfileRequest{Handle: "taken"})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestClientProfileService_Experience(t *testing.T) {
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := NewClientProfileService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().AddExperience(ctx, gomock.Any()).Return(models.Profile{Experience: []models.Experience{{ID: "e1"}}}, nil)
	mockAdapter.EXPECT().DeleteExperience(ctx, "missing").Return(models.Profile{},
		&adapter.APIError{Status: 404, Fields: map[string]string{"experience": "Experience entry was not found"}})
	mockAdapter.EXPECT().ListProfiles(ctx).Return([]models.Profile{{Handle: "ada"}}, nil)

	_, err := svc.AddExperience(ctx, models.ExperienceRequest{Title: "Engineer"})
	require.NoError(t, err)

	_, err = svc.DeleteExperience(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrExperienceNotFound)

	profiles, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}
