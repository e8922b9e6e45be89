package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. A profile is stored in "profiles"; its experience and
// education entries live in child tables and are attached on load.
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository].
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *profileRepository) FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	return r.findOne(ctx, sq.Eq{"p.user_id": userID})
}

func (r *profileRepository) FindProfileByHandle(ctx context.Context, handle string) (models.Profile, error) {
	return r.findOne(ctx, sq.Eq{"p.handle": handle})
}

// FindAllProfiles returns every profile in creation order. An empty result
// is not an error.
func (r *profileRepository) FindAllProfiles(ctx context.Context) ([]models.Profile, error) {
	return r.loadProfiles(ctx, r.DB, nil)
}

func (r *profileRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Profile, error) {
	profiles, err := r.loadProfiles(ctx, r.DB, where)
	if err != nil {
		if mapped := translatePgError(err, ErrProfileNotFound); mapped != nil {
			return models.Profile{}, mapped
		}
		return models.Profile{}, err
	}
	if len(profiles) == 0 {
		return models.Profile{}, ErrProfileNotFound
	}
	return profiles[0], nil
}

// loadProfiles runs three queries: the profiles matching where, then the
// experience and education entries of all of them at once.
func (r *profileRepository) loadProfiles(ctx context.Context, q querier, where sq.Sqlizer) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfilesQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.loadProfiles").Msg("failed to query profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	byID := make(map[string]int)

	for rows.Next() {
		var (
			p      models.Profile
			skills string
		)
		scanErr := rows.Scan(
			&p.ID, &p.User.ID, &p.User.Name, &p.User.Avatar, &p.Handle, &p.Company, &p.Website,
			&p.Location, &p.Status, &skills, &p.Bio, &p.GithubUsername, &p.Social.Youtube,
			&p.Social.Twitter, &p.Social.Facebook, &p.Social.Linkedin, &p.Social.Instagram, &p.Date,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "profileRepository.loadProfiles").Msg("failed to scan profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		p.Skills = splitSkills(skills)
		p.Experience = []models.Experience{}
		p.Education = []models.Education{}

		byID[p.ID] = len(profiles)
		profiles = append(profiles, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(profiles) == 0 {
		return profiles, nil
	}

	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}

	if err = r.attachExperience(ctx, q, ids, profiles, byID); err != nil {
		return nil, err
	}
	if err = r.attachEducation(ctx, q, ids, profiles, byID); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileRepository) attachExperience(ctx context.Context, q querier, ids []string, profiles []models.Profile, byID map[string]int) error {
	query, args, err := buildSelectExperienceQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e         models.Experience
			profileID string
			to        sql.NullTime
		)
		if err = rows.Scan(&e.ID, &profileID, &e.Title, &e.Company, &e.Location, &e.From.Time, &to, &e.Current, &e.Description); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.From = models.NewDate(e.From.Time)
		e.To = dateFromNull(to)

		if idx, ok := byID[profileID]; ok {
			profiles[idx].Experience = append(profiles[idx].Experience, e)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func (r *profileRepository) attachEducation(ctx context.Context, q querier, ids []string, profiles []models.Profile, byID map[string]int) error {
	query, args, err := buildSelectEducationQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e         models.Education
			profileID string
			to        sql.NullTime
		)
		if err = rows.Scan(&e.ID, &profileID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From.Time, &to, &e.Current, &e.Description); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.From = models.NewDate(e.From.Time)
		e.To = dateFromNull(to)

		if idx, ok := byID[profileID]; ok {
			profiles[idx].Education = append(profiles[idx].Education, e)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

// CreateProfile inserts profile for profile.User.ID.
//
// Error handling:
//   - duplicate handle → [ErrHandleAlreadyExists].
//   - user already has a profile → [ErrProfileAlreadyExists].
//   - unknown user → [ErrUserNotFound].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "profileRepository.CreateProfile").
			Str("user_id", profile.User.ID).
			Msg("failed to insert profile")
		if mapped := translatePgError(err, ErrUserNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// UpdateProfile overwrites every editable field of the profile owned by
// profile.User.ID.
func (r *profileRepository) UpdateProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.UpdateProfile").
			Str("user_id", profile.User.ID).
			Msg("failed to update profile")
		if mapped := translatePgError(err, ErrProfileNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return expectAffected(res, ErrProfileNotFound)
}

func (r *profileRepository) DeleteProfile(ctx context.Context, userID string) error {
	query, args, err := buildDeleteProfileQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := translatePgError(err, ErrProfileNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return expectAffected(res, ErrProfileNotFound)
}

func (r *profileRepository) AddExperience(ctx context.Context, userID string, exp models.Experience) error {
	return r.addEntry(ctx, userID, func(profileID string) (string, []any, error) {
		return buildInsertExperienceQuery(profileID, exp)
	})
}

func (r *profileRepository) AddEducation(ctx context.Context, userID string, edu models.Education) error {
	return r.addEntry(ctx, userID, func(profileID string) (string, []any, error) {
		return buildInsertEducationQuery(profileID, edu)
	})
}

// addEntry resolves the caller's profile and inserts a child row into it in
// one transaction.
func (r *profileRepository) addEntry(ctx context.Context, userID string, build func(profileID string) (string, []any, error)) error {
	log := logger.FromContext(ctx)

	return r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildSelectProfileIDQuery(userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var profileID string
		err = tx.QueryRowContext(ctx, query, args...).Scan(&profileID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProfileNotFound
		}
		if err != nil {
			if mapped := translatePgError(err, ErrProfileNotFound); mapped != nil {
				return mapped
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = build(profileID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "profileRepository.addEntry").
				Str("profile_id", profileID).
				Msg("failed to insert profile entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *profileRepository) DeleteExperience(ctx context.Context, userID, expID string) error {
	return r.deleteEntry(ctx, "profile_experience", userID, expID, ErrExperienceNotFound)
}

func (r *profileRepository) DeleteEducation(ctx context.Context, userID, eduID string) error {
	return r.deleteEntry(ctx, "profile_education", userID, eduID, ErrEducationNotFound)
}

func (r *profileRepository) deleteEntry(ctx context.Context, table, userID, entryID string, notFound error) error {
	query, args, err := buildDeleteProfileEntryQuery(table, userID, entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := translatePgError(err, notFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return expectAffected(res, notFound)
}
