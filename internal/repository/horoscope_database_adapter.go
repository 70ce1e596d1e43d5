package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/repository/models"
	"quiz-zone/internal/util"

	"github.com/jmoiron/sqlx"
)

const horoscopeColumns = `id, zodiac_sign, date, description, lucky_color, lucky_number, mood, created_at`

// HoroscopeDatabaseAdapter implements domain.HoroscopeRepository using sqlx.DB
type HoroscopeDatabaseAdapter struct {
	db *sqlx.DB
}

// NewHoroscopeDatabaseAdapter creates a new instance of HoroscopeDatabaseAdapter
func NewHoroscopeDatabaseAdapter(db *sqlx.DB) domain.HoroscopeRepository {
	return &HoroscopeDatabaseAdapter{db: db}
}

func (a *HoroscopeDatabaseAdapter) LatestDate(ctx context.Context) (*time.Time, error) {
	var latest sql.NullTime
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &latest, `SELECT MAX(date) FROM horoscopes`); err != nil {
		return nil, translateError(err, "horoscopes")
	}
	if !latest.Valid {
		return nil, nil
	}
	d := domain.TruncateDay(latest.Time)
	return &d, nil
}

func (a *HoroscopeDatabaseAdapter) CountByDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM horoscopes WHERE date = $1`, domain.TruncateDay(date)); err != nil {
		return 0, translateError(err, "horoscopes")
	}
	return count, nil
}

// InsertSkipDuplicates builds one multi-row INSERT so a concurrent or repeated
// run inserts nothing for rows that already exist.
func (a *HoroscopeDatabaseAdapter) InsertSkipDuplicates(ctx context.Context, horoscopes []domain.Horoscope) (int, error) {
	if len(horoscopes) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	placeholders := make([]string, 0, len(horoscopes))
	args := make([]any, 0, len(horoscopes)*8)
	for i := range horoscopes {
		h := &horoscopes[i]
		if h.ID == "" {
			h.ID = util.NewULID()
		}
		h.Date = domain.TruncateDay(h.Date)
		h.CreatedAt = now

		base := i * 8
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		args = append(args,
			h.ID, string(h.ZodiacSign), h.Date, h.Description,
			util.StringToNullString(h.LuckyColor), util.IntToNullInt64(h.LuckyNumber), util.StringToNullString(h.Mood),
			h.CreatedAt,
		)
	}

	query := `INSERT INTO horoscopes (` + horoscopeColumns + `) VALUES ` +
		strings.Join(placeholders, ", ") +
		` ON CONFLICT (zodiac_sign, date) DO NOTHING`

	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError(err, "horoscopes")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, domain.NewInternalError("database error on horoscopes", err)
	}
	return int(n), nil
}

func (a *HoroscopeDatabaseAdapter) GetBySignAndDate(ctx context.Context, sign domain.ZodiacSign, date time.Time) (*domain.Horoscope, error) {
	var row models.Horoscope
	query := `SELECT ` + horoscopeColumns + ` FROM horoscopes WHERE zodiac_sign = $1 AND date = $2`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, string(sign), domain.TruncateDay(date)); err != nil {
		return nil, translateError(err, "horoscope")
	}
	h := toDomainHoroscope(&row)
	return &h, nil
}

func (a *HoroscopeDatabaseAdapter) ListByDate(ctx context.Context, date time.Time) ([]domain.Horoscope, error) {
	var rows []models.Horoscope
	query := `SELECT ` + horoscopeColumns + ` FROM horoscopes WHERE date = $1`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, domain.TruncateDay(date)); err != nil {
		return nil, translateError(err, "horoscopes")
	}
	result := make([]domain.Horoscope, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainHoroscope(&rows[i]))
	}
	sortBySignOrder(result)
	return result, nil
}

// sortBySignOrder puts readings in zodiac order, Aries first.
func sortBySignOrder(hs []domain.Horoscope) {
	order := make(map[domain.ZodiacSign]int, len(domain.ZodiacSigns))
	for i, info := range domain.ZodiacSigns {
		order[info.Sign] = i
	}
	sort.SliceStable(hs, func(i, j int) bool {
		return order[hs[i].ZodiacSign] < order[hs[j].ZodiacSign]
	})
}

func toDomainHoroscope(m *models.Horoscope) domain.Horoscope {
	return domain.Horoscope{
		ID:          m.ID,
		ZodiacSign:  domain.ZodiacSign(m.ZodiacSign),
		Date:        domain.TruncateDay(m.Date),
		Description: m.Description,
		LuckyColor:  m.LuckyColor.String,
		LuckyNumber: int(m.LuckyNumber.Int64),
		Mood:        m.Mood.String,
		CreatedAt:   m.CreatedAt,
	}
}
