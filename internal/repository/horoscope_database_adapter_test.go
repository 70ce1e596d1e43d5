package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"quiz-zone/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twelveReadings(date time.Time) []domain.Horoscope {
	out := make([]domain.Horoscope, 0, len(domain.ZodiacSigns))
	for _, info := range domain.ZodiacSigns {
		out = append(out, domain.Horoscope{ZodiacSign: info.Sign, Date: date, Description: "A calm day.", LuckyNumber: 7})
	}
	return out
}

func TestHoroscopeInsertSkipDuplicates(t *testing.T) {
	date := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	t.Run("first run inserts every row in one statement", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewHoroscopeDatabaseAdapter(db)

		mock.ExpectExec(regexp.QuoteMeta(`($89, $90, $91, $92, $93, $94, $95, $96) ON CONFLICT (zodiac_sign, date) DO NOTHING`)).
			WillReturnResult(sqlmock.NewResult(0, 12))

		readings := twelveReadings(date)
		n, err := repo.InsertSkipDuplicates(context.Background(), readings)

		require.NoError(t, err)
		assert.Equal(t, 12, n)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), readings[0].Date)
		assert.NotEmpty(t, readings[11].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rerun inserts nothing", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewHoroscopeDatabaseAdapter(db)

		mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (zodiac_sign, date) DO NOTHING`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.InsertSkipDuplicates(context.Background(), twelveReadings(date))

		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewHoroscopeDatabaseAdapter(db)

		n, err := repo.InsertSkipDuplicates(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHoroscopeLatestDate(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewHoroscopeDatabaseAdapter(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT MAX(date) FROM horoscopes`)).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

		latest, err := repo.LatestDate(context.Background())
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("stored date", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewHoroscopeDatabaseAdapter(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT MAX(date) FROM horoscopes`)).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)))

		latest, err := repo.LatestDate(context.Background())
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), *latest)
	})
}

func TestHoroscopeListByDate_SortsBySign(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewHoroscopeDatabaseAdapter(db)

	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "zodiac_sign", "date", "description", "lucky_color", "lucky_number", "mood", "created_at"}).
		AddRow("h2", "PISCES", date, "Dreamy.", nil, nil, nil, date).
		AddRow("h1", "ARIES", date, "Bold.", "Red", 9, "Driven", date)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM horoscopes WHERE date = $1`)).
		WithArgs(date).
		WillReturnRows(rows)

	result, err := repo.ListByDate(context.Background(), date.Add(13*time.Hour))

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.Aries, result[0].ZodiacSign)
	assert.Equal(t, 9, result[0].LuckyNumber)
	assert.Equal(t, "Red", result[0].LuckyColor)
	assert.Equal(t, domain.Pisces, result[1].ZodiacSign)
	assert.Equal(t, 0, result[1].LuckyNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}
