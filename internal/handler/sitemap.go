package handler

import (
	"encoding/xml"
	"strings"

	"quiz-zone/internal/service"

	"github.com/gofiber/fiber/v2"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// SitemapHandler serves the XML sitemaps.
type SitemapHandler struct {
	catalog service.CatalogService
	baseURL string
}

func NewSitemapHandler(catalog service.CatalogService, baseURL string) *SitemapHandler {
	return &SitemapHandler{catalog: catalog, baseURL: strings.TrimRight(baseURL, "/")}
}

// Quizzes lists every published quiz.
func (h *SitemapHandler) Quizzes(c *fiber.Ctx) error {
	quizzes, err := h.catalog.PublishedQuizzes(c.UserContext())
	if err != nil {
		return err
	}
	set := urlSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(quizzes))}
	for _, q := range quizzes {
		u := sitemapURL{Loc: h.baseURL + "/quiz/" + q.Slug, ChangeFreq: "weekly"}
		if !q.UpdatedAt.IsZero() {
			u.LastMod = q.UpdatedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}
	return sendXML(c, set)
}

// Categories lists the category index and every category page.
func (h *SitemapHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.UserContext())
	if err != nil {
		return err
	}
	set := urlSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(categories)+1)}
	set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + "/category", ChangeFreq: "daily"})
	for _, cat := range categories {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + "/category/" + cat.Slug, ChangeFreq: "daily"})
	}
	return sendXML(c, set)
}

func sendXML(c *fiber.Ctx, set urlSet) error {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(append([]byte(xml.Header), body...))
}
