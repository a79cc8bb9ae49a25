package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/neverov-dev/passvault/models"
)

// Query builders shared by both backends. The placeholder format ($1 vs ?)
// comes from the StatementBuilderType carried by [DB]; the SQL text itself is
// identical for PostgreSQL and SQLite.

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("login", "password_hash", "created_at").
		Values(user.Login, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id, login, password_hash, created_at").
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select("user_id", "login", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildListEnvelopesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("id", "ciphertext", "created_at", "updated_at").
		From(models.VaultEnvelope{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildCreateEnvelopeQuery(b sq.StatementBuilderType, userID int64, envelope models.VaultEnvelope) (string, []any, error) {
	return b.Insert(models.VaultEnvelope{}.TableName()).
		Columns("id", "user_id", "ciphertext", "created_at", "updated_at").
		Values(envelope.ID, userID, envelope.Ciphertext, envelope.CreatedAt, envelope.UpdatedAt).
		Suffix("RETURNING id, ciphertext, created_at, updated_at").
		ToSql()
}

func buildUpdateEnvelopeQuery(b sq.StatementBuilderType, userID int64, envelope models.VaultEnvelope) (string, []any, error) {
	return b.Update(models.VaultEnvelope{}.TableName()).
		Set("ciphertext", envelope.Ciphertext).
		Set("updated_at", envelope.UpdatedAt).
		Where(sq.Eq{"id": envelope.ID, "user_id": userID}).
		Suffix("RETURNING id, ciphertext, created_at, updated_at").
		ToSql()
}

func buildDeleteEnvelopeQuery(b sq.StatementBuilderType, userID int64, envelopeID string) (string, []any, error) {
	return b.Delete(models.VaultEnvelope{}.TableName()).
		Where(sq.Eq{"id": envelopeID, "user_id": userID}).
		ToSql()
}
