package service

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// pgText wraps a string in a pgtype.Text, treating "" as NULL.
func pgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// textString unwraps a pgtype.Text, returning "" for NULL.
func textString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// uuidString renders a pgtype.UUID in canonical form, "" when invalid.
func uuidString(u pgtype.UUID) string {
	if !u.Valid {
		return ""
	}
	b := u.Bytes
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// scanUUID parses a string id into a pgtype.UUID.
func scanUUID(id string) (pgtype.UUID, error) {
	var u pgtype.UUID
	if err := u.Scan(id); err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return u, nil
}

// tsTime unwraps a pgtype.Timestamptz into a *time.Time, nil for NULL.
func tsTime(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

// tsValue unwraps a pgtype.Timestamptz into a time.Time, zero for NULL.
func tsValue(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}
