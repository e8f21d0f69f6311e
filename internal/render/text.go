package render

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Text makes an upstream string safe to print: escape sequences and control
// characters are removed so catalog data can never drive the terminal.
// Newlines survive; tabs become spaces.
func Text(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Line is Text collapsed onto a single line.
func Line(s string) string {
	return strings.Join(strings.Fields(Text(s)), " ")
}

// SafeURL returns a sanitized http(s) URL, or "" when raw is not one.
func SafeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(Line(raw)))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

// Link renders a terminal hyperlink with the target shown alongside the label.
func Link(label, raw string) string {
	target := SafeURL(raw)
	if target == "" {
		return ""
	}
	return ansi.SetHyperlink(target) + LinkStyle.Render(label) + ansi.ResetHyperlink() +
		" " + HelpDescStyle.Render(target)
}
