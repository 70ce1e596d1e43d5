package repository

import (
	"database/sql"
	"errors"
	"testing"

	"quiz-zone/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB backed by sqlmock with regexp matching.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want domain.ErrorCode
	}{
		{"no rows", sql.ErrNoRows, domain.CodeNotFound},
		{"unique violation", &pq.Error{Code: pqUniqueViolation}, domain.CodeConflict},
		{"foreign key violation", &pq.Error{Code: pqForeignKeyViolation}, domain.CodePreconditionFailed},
		{"check violation", &pq.Error{Code: pqCheckViolation}, domain.CodeInvalidInput},
		{"anything else", errors.New("connection reset"), domain.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.in, "quiz")
			assert.True(t, domain.HasCode(err, tt.want), "got %v", err)
		})
	}

	assert.NoError(t, translateError(nil, "quiz"))
}
