package datasource

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
)

// htmlToText strips markup from an HTML fragment, keeping word boundaries
// around block elements. Feed descriptions arrive as HTML soup and only the
// text matters here.
func htmlToText(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		text := tagRe.ReplaceAllString(fragment, " ")
		return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "br", "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
				sb.WriteString(" ")
			}
		}
	}
	walk(doc)

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(sb.String(), " "))
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
