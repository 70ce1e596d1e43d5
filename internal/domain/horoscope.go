package domain

import (
	"context"
	"strings"
	"time"
)

// ZodiacSign is one of the twelve western zodiac signs.
type ZodiacSign string

const (
	Aries       ZodiacSign = "ARIES"
	Taurus      ZodiacSign = "TAURUS"
	Gemini      ZodiacSign = "GEMINI"
	Cancer      ZodiacSign = "CANCER"
	Leo         ZodiacSign = "LEO"
	Virgo       ZodiacSign = "VIRGO"
	Libra       ZodiacSign = "LIBRA"
	Scorpio     ZodiacSign = "SCORPIO"
	Sagittarius ZodiacSign = "SAGITTARIUS"
	Capricorn   ZodiacSign = "CAPRICORN"
	Aquarius    ZodiacSign = "AQUARIUS"
	Pisces      ZodiacSign = "PISCES"
)

// ZodiacInfo holds display data for a sign.
type ZodiacInfo struct {
	Sign        ZodiacSign `json:"sign"`
	Symbol      string     `json:"symbol"`
	Dates       string     `json:"dates"`
	Element     string     `json:"element"`
	ElementIcon string     `json:"elementIcon"`
}

// ZodiacSigns lists all signs in calendar order starting from Aries.
var ZodiacSigns = []ZodiacInfo{
	{Aries, "♈️", "Mar 21 - Apr 19", "Fire", "🔥"},
	{Taurus, "♉️", "Apr 20 - May 20", "Earth", "🌍"},
	{Gemini, "♊️", "May 21 - Jun 20", "Air", "🌬️"},
	{Cancer, "♋️", "Jun 21 - Jul 22", "Water", "💧"},
	{Leo, "♌️", "Jul 23 - Aug 22", "Fire", "🔥"},
	{Virgo, "♍️", "Aug 23 - Sep 22", "Earth", "🌍"},
	{Libra, "♎️", "Sep 23 - Oct 22", "Air", "🌬️"},
	{Scorpio, "♏️", "Oct 23 - Nov 21", "Water", "💧"},
	{Sagittarius, "♐️", "Nov 22 - Dec 21", "Fire", "🔥"},
	{Capricorn, "♑️", "Dec 22 - Jan 19", "Earth", "🌍"},
	{Aquarius, "♒️", "Jan 20 - Feb 18", "Air", "🌬️"},
	{Pisces, "♓️", "Feb 19 - Mar 20", "Water", "💧"},
}

// ParseZodiacSign accepts any letter case.
func ParseZodiacSign(s string) (ZodiacSign, bool) {
	sign := ZodiacSign(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := sign.Info()
	return sign, ok
}

// Info returns the display data for the sign.
func (z ZodiacSign) Info() (ZodiacInfo, bool) {
	for _, info := range ZodiacSigns {
		if info.Sign == z {
			return info, true
		}
	}
	return ZodiacInfo{}, false
}

// Horoscope is the daily reading for one sign. (ZodiacSign, Date) is unique.
type Horoscope struct {
	ID          string     `json:"id"`
	ZodiacSign  ZodiacSign `json:"zodiacSign"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	LuckyColor  string     `json:"luckyColor,omitempty"`
	LuckyNumber int        `json:"luckyNumber,omitempty"`
	Mood        string     `json:"mood,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// HoroscopeRepository defines persistence for horoscopes.
type HoroscopeRepository interface {
	// LatestDate returns the most recent stored date, or nil when empty.
	LatestDate(ctx context.Context) (*time.Time, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
	// InsertSkipDuplicates writes the batch in one statement, ignoring rows whose
	// (sign, date) already exists. It returns the number of rows inserted.
	InsertSkipDuplicates(ctx context.Context, horoscopes []Horoscope) (int, error)
	GetBySignAndDate(ctx context.Context, sign ZodiacSign, date time.Time) (*Horoscope, error)
	ListByDate(ctx context.Context, date time.Time) ([]Horoscope, error)
}

// TruncateDay returns t at midnight UTC of its calendar day.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
