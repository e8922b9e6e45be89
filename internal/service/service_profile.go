package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

type profileService struct {
	profileRepository store.ProfileRepository
	userRepository    store.UserRepository
	ids               *utils.UUIDGenerator

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// GetProfile returns the profile owned by userID. Ids that are not UUIDs
// cannot belong to anyone and yield store.ErrProfileNotFound.
func (s *profileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	if !utils.IsUUID(userID) {
		return models.Profile{}, store.ErrProfileNotFound
	}
	return s.profileRepository.FindProfileByUserID(ctx, userID)
}

func (s *profileService) GetProfileByHandle(ctx context.Context, handle string) (models.Profile, error) {
	return s.profileRepository.FindProfileByHandle(ctx, handle)
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profileRepository.FindAllProfiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}
	return profiles, nil
}

func (s *profileService) SaveProfile(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile := models.Profile{
		User:           models.UserRef{ID: userID},
		Handle:         strings.TrimSpace(req.Handle),
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         parseSkills(req.Skills),
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: models.Social{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	}

	_, err := s.profileRepository.FindProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		err = s.profileRepository.UpdateProfile(ctx, profile)
	case errors.Is(err, store.ErrProfileNotFound):
		profile.ID = s.ids.Generate()
		err = s.profileRepository.CreateProfile(ctx, profile)
	}
	if err != nil {
		log.Err(err).Str("func", "profileService.SaveProfile").Str("user_id", userID).Msg("saving profile failed")
		return models.Profile{}, fmt.Errorf("saving profile failed: %w", err)
	}

	return s.profileRepository.FindProfileByUserID(ctx, userID)
}

// DeleteAccount removes the profile, if any, then the user. Posts, likes and
// comments of the user are removed with the account.
func (s *profileService) DeleteAccount(ctx context.Context, userID string) error {
	err := s.profileRepository.DeleteProfile(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrProfileNotFound) {
		return fmt.Errorf("deleting profile failed: %w", err)
	}

	if err = s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting user failed: %w", err)
	}
	return nil
}

func (s *profileService) AddExperience(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error) {
	exp := models.Experience{
		ID:          s.ids.Generate(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          endDate(req.To, req.Current),
		Current:     req.Current,
		Description: req.Description,
	}

	if err := s.profileRepository.AddExperience(ctx, userID, exp); err != nil {
		return models.Profile{}, fmt.Errorf("adding experience failed: %w", err)
	}
	return s.profileRepository.FindProfileByUserID(ctx, userID)
}

func (s *profileService) DeleteExperience(ctx context.Context, userID, expID string) (models.Profile, error) {
	if !utils.IsUUID(expID) {
		return models.Profile{}, store.ErrExperienceNotFound
	}
	if err := s.profileRepository.DeleteExperience(ctx, userID, expID); err != nil {
		return models.Profile{}, fmt.Errorf("deleting experience failed: %w", err)
	}
	return s.profileRepository.FindProfileByUserID(ctx, userID)
}

func (s *profileService) AddEducation(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error) {
	edu := models.Education{
		ID:           s.ids.Generate(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           endDate(req.To, req.Current),
		Current:      req.Current,
		Description:  req.Description,
	}

	if err := s.profileRepository.AddEducation(ctx, userID, edu); err != nil {
		return models.Profile{}, fmt.Errorf("adding education failed: %w", err)
	}
	return s.profileRepository.FindProfileByUserID(ctx, userID)
}

func (s *profileService) DeleteEducation(ctx context.Context, userID, eduID string) (models.Profile, error) {
	if !utils.IsUUID(eduID) {
		return models.Profile{}, store.ErrEducationNotFound
	}
	if err := s.profileRepository.DeleteEducation(ctx, userID, eduID); err != nil {
		return models.Profile{}, fmt.Errorf("deleting education failed: %w", err)
	}
	return s.profileRepository.FindProfileByUserID(ctx, userID)
}

// parseSkills splits the comma separated skills field and drops blanks.
func parseSkills(csv string) []string {
	skills := make([]string, 0)
	for _, s := range strings.Split(csv, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// endDate drops the end of an ongoing entry: a nil end means "Now".
func endDate(to *models.Date, current bool) *models.Date {
	if current || to == nil || to.IsZero() {
		return nil
	}
	return to
}
