package assemblyhelpers

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const ellipsis = "…"

// Truncate shortens text to at most max runes, ending with an ellipsis when
// anything was cut.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	keep := max - utf8.RuneCountInString(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return strings.TrimRightFunc(string(runes[:keep]), func(r rune) bool { return r == ' ' }) + ellipsis
}

var allowed = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Strong: true, atom.Em: true, atom.B: true, atom.I: true,
	atom.U: true, atom.A: true, atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Blockquote: true,
}

// dropped elements lose their content too.
var dropped = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Iframe: true, atom.Object: true,
}

// Sanitize keeps the basic formatting tags of user content and removes
// everything else. Links keep only an http, https, mailto or relative href.
func Sanitize(content string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(content))
	skip := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a malformed tail; either way the output so far stands.
			return b.String()
		}
		tok := z.Token()
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			if dropped[tok.DataAtom] {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if skip == 0 && allowed[tok.DataAtom] {
				b.WriteString(cleanTag(tok).String())
			}
		case html.EndTagToken:
			if dropped[tok.DataAtom] {
				if skip > 0 {
					skip--
				}
				continue
			}
			if skip == 0 && allowed[tok.DataAtom] {
				b.WriteString(tok.String())
			}
		case html.TextToken:
			if skip == 0 {
				b.WriteString(html.EscapeString(tok.Data))
			}
		}
	}
}

func cleanTag(tok html.Token) html.Token {
	var attrs []html.Attribute
	if tok.DataAtom == atom.A {
		for _, a := range tok.Attr {
			if a.Key == "href" && safeHref(a.Val) {
				attrs = append(attrs, html.Attribute{Key: "href", Val: a.Val})
			}
		}
	}
	tok.Attr = attrs
	return tok
}

func safeHref(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	}
	return false
}
