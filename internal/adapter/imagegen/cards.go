package imagegen

import (
	"fmt"
	"io"
	"strings"

	"quiz-zone/internal/domain"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	cardWidth  = 1080
	cardHeight = 1080
	margin     = 90
)

// element colours, background then accent
var elementPalette = map[string][2]string{
	"Fire":  {"#3b0d0c", "#ff7a45"},
	"Earth": {"#1f2a16", "#9ccc65"},
	"Air":   {"#13233a", "#81d4fa"},
	"Water": {"#0d1b2a", "#4dd0e1"},
}

var difficultyColor = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "#43a047",
	domain.DifficultyMedium: "#fb8c00",
	domain.DifficultyHard:   "#e53935",
}

// CardRenderer draws square share cards with the Go fonts.
type CardRenderer struct {
	bold    *opentype.Font
	regular *opentype.Font
	site    string
}

func NewCardRenderer(siteName string) (*CardRenderer, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	return &CardRenderer{
		bold:    bold,
		regular: regular,
		site:    siteName,
	}, nil
}

var _ domain.CardRenderer = (*CardRenderer)(nil)

func (r *CardRenderer) face(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

func (r *CardRenderer) RenderHoroscope(w io.Writer, h domain.Horoscope) error {
	info, ok := h.ZodiacSign.Info()
	if !ok {
		return domain.NewInvalidInputError(fmt.Sprintf("unknown zodiac sign %q", h.ZodiacSign))
	}
	palette := elementPalette[info.Element]

	dc := gg.NewContext(cardWidth, cardHeight)
	dc.SetHexColor(palette[0])
	dc.Clear()
	dc.SetHexColor(palette[1])
	dc.SetLineWidth(8)
	dc.DrawRoundedRectangle(40, 40, cardWidth-80, cardHeight-80, 36)
	dc.Stroke()

	if err := r.text(dc, r.bold, 84, palette[1], cases.Title(language.English).String(strings.ToLower(string(h.ZodiacSign))), 200); err != nil {
		return err
	}
	subtitle := fmt.Sprintf("%s  |  %s  |  %s", info.Dates, info.Element, h.Date.Format("January 2, 2006"))
	if err := r.text(dc, r.regular, 32, "#eceff1", subtitle, 280); err != nil {
		return err
	}

	regular, err := r.face(r.regular, 40)
	if err != nil {
		return err
	}
	dc.SetFontFace(regular)
	dc.SetHexColor("#ffffff")
	dc.DrawStringWrapped(h.Description, cardWidth/2, 340, 0.5, 0, cardWidth-2*margin, 1.5, gg.AlignCenter)

	var extras []string
	if h.LuckyColor != "" {
		extras = append(extras, "Lucky color: "+h.LuckyColor)
	}
	if h.LuckyNumber > 0 {
		extras = append(extras, fmt.Sprintf("Lucky number: %d", h.LuckyNumber))
	}
	if h.Mood != "" {
		extras = append(extras, "Mood: "+h.Mood)
	}
	if len(extras) > 0 {
		if err := r.text(dc, r.bold, 30, palette[1], strings.Join(extras, "   "), cardHeight-170); err != nil {
			return err
		}
	}
	if err := r.text(dc, r.regular, 28, "#b0bec5", r.site, cardHeight-100); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func (r *CardRenderer) RenderQuiz(w io.Writer, q domain.Quiz) error {
	accent, ok := difficultyColor[q.Difficulty]
	if !ok {
		accent = difficultyColor[domain.DifficultyMedium]
	}

	dc := gg.NewContext(cardWidth, cardHeight)
	grad := gg.NewLinearGradient(0, 0, cardWidth, cardHeight)
	grad.AddColorStop(0, hexColor("#1a237e"))
	grad.AddColorStop(1, hexColor("#4a148c"))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, cardWidth, cardHeight)
	dc.Fill()

	dc.SetHexColor(accent)
	dc.DrawRoundedRectangle(margin, 120, 260, 64, 32)
	dc.Fill()
	if err := r.textAt(dc, r.bold, 30, "#ffffff", strings.ToUpper(string(q.Difficulty)), margin+130, 152); err != nil {
		return err
	}

	title, err := r.face(r.bold, 72)
	if err != nil {
		return err
	}
	dc.SetFontFace(title)
	dc.SetHexColor("#ffffff")
	dc.DrawStringWrapped(q.Title, cardWidth/2, 300, 0.5, 0, cardWidth-2*margin, 1.3, gg.AlignCenter)

	desc, err := r.face(r.regular, 38)
	if err != nil {
		return err
	}
	dc.SetFontFace(desc)
	dc.SetHexColor("#e1bee7")
	dc.DrawStringWrapped(q.Description, cardWidth/2, 620, 0.5, 0, cardWidth-2*margin, 1.4, gg.AlignCenter)

	footer := fmt.Sprintf("%d questions", len(q.Questions))
	if q.Category != nil {
		footer = q.Category.Name + "  |  " + footer
	}
	if err := r.text(dc, r.bold, 32, "#ffffff", footer, cardHeight-170); err != nil {
		return err
	}
	if err := r.text(dc, r.regular, 28, "#ce93d8", r.site, cardHeight-100); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// text draws s centred horizontally at baseline y.
func (r *CardRenderer) text(dc *gg.Context, f *opentype.Font, size float64, color, s string, y float64) error {
	return r.textAt(dc, f, size, color, s, cardWidth/2, y)
}

func (r *CardRenderer) textAt(dc *gg.Context, f *opentype.Font, size float64, color, s string, x, y float64) error {
	face, err := r.face(f, size)
	if err != nil {
		return fmt.Errorf("failed to create font face: %w", err)
	}
	dc.SetFontFace(face)
	dc.SetHexColor(color)
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
	return nil
}
