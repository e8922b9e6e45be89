package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dev-connector/models"
)

// sqlite uses ? placeholders, squirrel's default.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// The session table holds one row whose id is pinned to 1.
const sessionRowID = 1

func buildSaveSessionQuery(s models.Session) (string, []any, error) {
	return sqlite.Replace("session").
		Columns("id", "token", "user_id", "name", "email", "avatar", "saved_at").
		Values(sessionRowID, s.Token, s.User.ID, s.User.Name, s.User.Email, s.User.Avatar, s.SavedAt).
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return sqlite.Select("token", "user_id", "name", "email", "avatar", "saved_at").
		From("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildClearSessionQuery() (string, []any, error) {
	return sqlite.Delete("session").ToSql()
}
