package helpers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// Postgres error codes the services branch on
const (
	PgUniqueViolation      = "23505"
	PgSerializationFailure = "40001"
)

// StringToNullableText converts string to nullable pgtype.Text
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// StringPtrToNullableText converts an optional string to pgtype.Text
func StringPtrToNullableText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return StringToNullableText(*s)
}

// NullableTextToPtr returns nil for NULL text
func NullableTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// TimeToNullableTimestamptz converts time to nullable pgtype.Timestamptz
func TimeToNullableTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// NullableTimestamptzToPtr returns nil for NULL timestamps
func NullableTimestamptzToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// Int32ToNullableInt4 converts int32 to nullable pgtype.Int4
func Int32ToNullableInt4(i int32) pgtype.Int4 {
	return pgtype.Int4{Int32: i, Valid: true}
}

// Int32PtrToNullableInt4 converts an optional int32 to pgtype.Int4
func Int32PtrToNullableInt4(i *int32) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return Int32ToNullableInt4(*i)
}

// NullableInt4ToPtr returns nil for NULL integers
func NullableInt4ToPtr(i pgtype.Int4) *int32 {
	if !i.Valid {
		return nil
	}
	v := i.Int32
	return &v
}

// UUIDToNullable wraps a uuid as a valid pgtype.UUID
func UUIDToNullable(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// UUIDPtrToNullable converts an optional uuid to pgtype.UUID
func UUIDPtrToNullable(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return UUIDToNullable(*id)
}

// NullableUUIDToPtr returns nil for NULL uuids
func NullableUUIDToPtr(id pgtype.UUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	v := uuid.UUID(id.Bytes)
	return &v
}

// BoolPtrToNullable converts an optional bool to pgtype.Bool
func BoolPtrToNullable(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgUniqueViolation
}

// IsSerializationFailure reports whether err is a Postgres serialization failure
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgSerializationFailure
}

// UniqueViolationConstraint returns the violated constraint name when err is a
// unique violation.
func UniqueViolationConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
