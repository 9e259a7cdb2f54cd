package render

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML renders markdown. Raw HTML in the source is dropped by goldmark's
// default renderer.
func HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Excerpt returns up to maxRunes of the readable text in src, with markdown
// syntax and whitespace runs removed. Text longer than maxRunes ends in "…".
func Excerpt(src string, maxRunes int) string {
	if strings.TrimSpace(src) == "" || maxRunes <= 0 {
		return ""
	}
	html, err := HTML(src)
	if err != nil {
		return truncate(strings.Join(strings.Fields(src), " "), maxRunes)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return truncate(strings.Join(strings.Fields(src), " "), maxRunes)
	}

	var parts []string
	doc.Find("h1,h2,h3,h4,h5,h6,p,li,td").Each(func(_ int, s *goquery.Selection) {
		// nested list items repeat their children's text
		if s.Is("li") && s.Find("li").Length() > 0 {
			s = s.Clone()
			s.Find("ul,ol").Remove()
		}
		if s.Is("p") && s.ParentsFiltered("li").Length() > 0 {
			return
		}
		if t := strings.Join(strings.Fields(s.Text()), " "); t != "" {
			parts = append(parts, t)
		}
	})
	return truncate(strings.Join(parts, " "), maxRunes)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
