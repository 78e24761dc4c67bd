package deprecations

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// CleanText strips HTML tags, decodes entities, and normalizes whitespace.
// With preserveLines, spaces collapse within lines but line breaks survive;
// otherwise all whitespace collapses to single spaces.
func CleanText(text string, preserveLines bool) string {
	if text == "" {
		return ""
	}

	text = stripTags(text)

	if preserveLines {
		lines := strings.Split(text, "\n")
		out := make([]string, 0, len(lines))
		for _, line := range lines {
			out = append(out, strings.Join(strings.Fields(line), " "))
		}
		return strings.TrimSpace(strings.Join(out, "\n"))
	}

	return strings.Join(strings.Fields(text), " ")
}

// stripTags removes markup and decodes entities, keeping the element break
// structure as newlines so preserve-lines mode has something to preserve.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return html.UnescapeString(s)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.WriteString(string(z.Text()))
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "br", "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteByte('\n')
			}
		}
	}
}

// ValidateURL reports whether s is a well-formed HTTP(S) URL.
func ValidateURL(s string, requireHTTPS bool) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	if requireHTTPS {
		return u.Scheme == "https"
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// NormalizeURL normalizes a URL for comparison: adds a missing https scheme,
// lowercases the host, and trims trailing slashes from the path. Returns ""
// for unparseable input.
func NormalizeURL(s string) string {
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimRight(u.Path, "/")
	return u.String()
}
