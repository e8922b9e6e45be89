package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dev-connector/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "name", "email", "password_hash", "avatar", "created_at"}

var profileColumns = []string{
	"p.id", "p.user_id", "u.name", "u.avatar", "p.handle", "p.company", "p.website",
	"p.location", "p.status", "p.skills", "p.bio", "p.github_username", "p.youtube",
	"p.twitter", "p.facebook", "p.linkedin", "p.instagram", "p.created_at",
}

var experienceColumns = []string{
	"id", "profile_id", "title", "company", "location", "from_date", "to_date", "current", "description",
}

var educationColumns = []string{
	"id", "profile_id", "school", "degree", "field_of_study", "from_date", "to_date", "current", "description",
}

var postColumns = []string{"id", "user_id", "text", "name", "avatar", "created_at"}

var commentColumns = []string{"id", "post_id", "user_id", "text", "name", "avatar", "created_at"}

// ---------------------------------------------------------------------------
// users
// ---------------------------------------------------------------------------

func buildInsertUserQuery(u models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("id", "name", "email", "password_hash", "avatar").
		Values(u.ID, u.Name, u.Email, u.PasswordHash, u.Avatar).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
}

func buildDeleteUserQuery(userID string) (string, []any, error) {
	return psql.Delete("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// ---------------------------------------------------------------------------
// profiles
// ---------------------------------------------------------------------------

// buildSelectProfilesQuery selects profiles joined with their owner's name
// and avatar. A nil where selects every profile.
func buildSelectProfilesQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Select(profileColumns...).
		From("profiles p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.created_at", "p.id")
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

func buildSelectProfileIDQuery(userID string) (string, []any, error) {
	return psql.Select("id").
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertProfileQuery(p models.Profile) (string, []any, error) {
	return psql.Insert("profiles").
		Columns(
			"id", "user_id", "handle", "company", "website", "location", "status", "skills", "bio",
			"github_username", "youtube", "twitter", "facebook", "linkedin", "instagram",
		).
		Values(
			p.ID, p.User.ID, p.Handle, p.Company, p.Website, p.Location, p.Status, joinSkills(p.Skills), p.Bio,
			p.GithubUsername, p.Social.Youtube, p.Social.Twitter, p.Social.Facebook, p.Social.Linkedin, p.Social.Instagram,
		).
		ToSql()
}

func buildUpdateProfileQuery(p models.Profile) (string, []any, error) {
	return psql.Update("profiles").
		SetMap(map[string]any{
			"handle":          p.Handle,
			"company":         p.Company,
			"website":         p.Website,
			"location":        p.Location,
			"status":          p.Status,
			"skills":          joinSkills(p.Skills),
			"bio":             p.Bio,
			"github_username": p.GithubUsername,
			"youtube":         p.Social.Youtube,
			"twitter":         p.Social.Twitter,
			"facebook":        p.Social.Facebook,
			"linkedin":        p.Social.Linkedin,
			"instagram":       p.Social.Instagram,
		}).
		Where(sq.Eq{"user_id": p.User.ID}).
		ToSql()
}

func buildDeleteProfileQuery(userID string) (string, []any, error) {
	return psql.Delete("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// Entries are listed newest first, which is how the profile shows them.
func buildSelectExperienceQuery(profileIDs []string) (string, []any, error) {
	return psql.Select(experienceColumns...).
		From("profile_experience").
		Where(sq.Eq{"profile_id": profileIDs}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectEducationQuery(profileIDs []string) (string, []any, error) {
	return psql.Select(educationColumns...).
		From("profile_education").
		Where(sq.Eq{"profile_id": profileIDs}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildInsertExperienceQuery(profileID string, e models.Experience) (string, []any, error) {
	return psql.Insert("profile_experience").
		Columns(experienceColumns...).
		Values(e.ID, profileID, e.Title, e.Company, e.Location, e.From.Time, nullDate(e.To), e.Current, e.Description).
		ToSql()
}

func buildInsertEducationQuery(profileID string, e models.Education) (string, []any, error) {
	return psql.Insert("profile_education").
		Columns(educationColumns...).
		Values(e.ID, profileID, e.School, e.Degree, e.FieldOfStudy, e.From.Time, nullDate(e.To), e.Current, e.Description).
		ToSql()
}

// buildDeleteProfileEntryQuery deletes an experience or education row, but
// only when it belongs to the profile of userID.
func buildDeleteProfileEntryQuery(table, userID, entryID string) (string, []any, error) {
	return psql.Delete(table).
		Where(sq.Eq{"id": entryID}).
		Where("profile_id IN (SELECT id FROM profiles WHERE user_id = ?)", userID).
		ToSql()
}

// ---------------------------------------------------------------------------
// posts
// ---------------------------------------------------------------------------

// buildSelectPostsQuery lists posts newest first. A nil where selects all.
func buildSelectPostsQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Select(postColumns...).
		From("posts").
		OrderBy("created_at DESC", "id DESC")
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

func buildSelectLikesQuery(postIDs []string) (string, []any, error) {
	return psql.Select("post_id", "user_id").
		From("post_likes").
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy("created_at DESC", "user_id").
		ToSql()
}

func buildSelectCommentsQuery(postIDs []string) (string, []any, error) {
	return psql.Select(commentColumns...).
		From("post_comments").
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildInsertPostQuery(p models.Post) (string, []any, error) {
	return psql.Insert("posts").
		Columns("id", "user_id", "text", "name", "avatar").
		Values(p.ID, p.User, p.Text, p.Name, p.Avatar).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildDeletePostQuery(postID, userID string) (string, []any, error) {
	return psql.Delete("posts").
		Where(sq.Eq{"id": postID, "user_id": userID}).
		ToSql()
}

// buildLockPostQuery holds a share lock on the post row for the rest of the
// transaction so it cannot be deleted between the check and the write.
func buildLockPostQuery(postID string) (string, []any, error) {
	return psql.Select("id").
		From("posts").
		Where(sq.Eq{"id": postID}).
		Suffix("FOR SHARE").
		ToSql()
}

func buildInsertLikeQuery(postID, userID string) (string, []any, error) {
	return psql.Insert("post_likes").
		Columns("post_id", "user_id").
		Values(postID, userID).
		Suffix("ON CONFLICT (post_id, user_id) DO NOTHING").
		ToSql()
}

func buildDeleteLikeQuery(postID, userID string) (string, []any, error) {
	return psql.Delete("post_likes").
		Where(sq.Eq{"post_id": postID, "user_id": userID}).
		ToSql()
}

func buildInsertCommentQuery(postID string, c models.Comment) (string, []any, error) {
	return psql.Insert("post_comments").
		Columns("id", "post_id", "user_id", "text", "name", "avatar").
		Values(c.ID, postID, c.User, c.Text, c.Name, c.Avatar).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildDeleteCommentQuery(postID, commentID string) (string, []any, error) {
	return psql.Delete("post_comments").
		Where(sq.Eq{"id": commentID, "post_id": postID}).
		ToSql()
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func joinSkills(skills []string) string {
	return strings.Join(skills, ",")
}

func splitSkills(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func nullDate(d *models.Date) sql.NullTime {
	if d == nil || d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func dateFromNull(t sql.NullTime) *models.Date {
	if !t.Valid {
		return nil
	}
	d := models.NewDate(t.Time)
	return &d
}
