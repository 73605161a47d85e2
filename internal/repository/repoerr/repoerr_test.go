package repoerr

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapNilPassesThrough(t *testing.T) {
	assert.NoError(t, Wrap("feedback.FindOne", nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "gorm record not found",
			err:  gorm.ErrRecordNotFound,
			want: NotFound,
		},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: Conflict,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			want: Conflict,
		},
		{
			name: "row level security denial",
			err:  &pgconn.PgError{Code: "42501"},
			want: PermissionDenied,
		},
		{
			name: "wrapped pg error",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			want: Conflict,
		},
		{
			name: "anything else",
			err:  assert.AnError,
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap("op", tt.err)
			assert.Equal(t, tt.want, KindOf(wrapped))
		})
	}
}

func TestKindOfUnwrappedErrorIsUnknown(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(assert.AnError))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(Wrap("op", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(Wrap("op", assert.AnError)))
}

func TestErrorStringCarriesOpAndKind(t *testing.T) {
	err := Wrap("tag.Create", &pgconn.PgError{Code: "23505"})
	assert.Contains(t, err.Error(), "tag.Create")
	assert.Contains(t, err.Error(), "conflict")
}
