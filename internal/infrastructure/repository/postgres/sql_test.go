package postgres

import (
	"database/sql"
	"testing"
)

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation fixtures does not exist")
		if isBindParameterMismatch(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUnnamedPreparedStatementMissing(t *testing.T) {
	t.Run("matches statement missing message", func(t *testing.T) {
		err := fakeErr("pq: unnamed prepared statement does not exist (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for statement missing error")
		}
	})

	t.Run("matches by 26000 code", func(t *testing.T) {
		err := fakeErr("pq: prepared statement missing (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for 26000 prepared statement error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation fixtures does not exist")
		if isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIntPtrToNullInt64(t *testing.T) {
	t.Run("round trips a value", func(t *testing.T) {
		v := 4
		got := nullInt64ToIntPtr(intPtrToNullInt64(&v))
		if got == nil || *got != 4 {
			t.Fatalf("expected 4, got %v", got)
		}
	})

	t.Run("preserves nil", func(t *testing.T) {
		if got := nullInt64ToIntPtr(intPtrToNullInt64(nil)); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("invalid null is nil", func(t *testing.T) {
		if got := nullInt64ToIntPtr(sql.NullInt64{Int64: 9}); got != nil {
			t.Fatalf("expected nil for invalid NullInt64, got %v", got)
		}
	})
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
