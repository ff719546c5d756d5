// Package netscape imports shortcut drafts from a browser bookmark export
// (the Netscape bookmark HTML format every major browser writes).
package netscape

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/utils"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// Parse reads a bookmark export and returns one draft per http(s) link in
// document order. When folder is non-empty only links nested (at any depth)
// under a folder with that name, compared case-insensitively, are returned.
func Parse(r io.Reader, folder string) ([]domain.Draft, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bookmark html: %w", err)
	}

	var drafts []domain.Draft

	// Folder names enclosing the current node. A heading is pushed when the
	// <DL> that follows it opens.
	var stack []string
	pending := ""

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				pending = textContent(n)
				return

			case "a":
				if folder != "" && !within(stack, folder) {
					return
				}
				href := strings.TrimSpace(attr(n, "href"))
				if !validate.IsHTTPURL(href) {
					return
				}
				title := textContent(n)
				if title == "" {
					title = href
				}
				drafts = append(drafts, domain.Draft{
					URL:         href,
					Name:        title,
					Color:       validate.Presets[len(drafts)%len(validate.Presets)],
					DisplayMode: string(domain.DisplayAuto),
				})
				return

			case "dl":
				pushed := false
				if pending != "" {
					stack = append(stack, pending)
					pending = ""
					pushed = true
				}
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c)
				}
				if pushed {
					stack = stack[:len(stack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return drafts, nil
}

// ParseFile opens path and calls Parse.
func ParseFile(path, folder string) ([]domain.Draft, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmark file: %w", err)
	}
	defer utils.Close(f)

	return Parse(f, folder)
}

func within(stack []string, folder string) bool {
	for _, name := range stack {
		if strings.EqualFold(name, folder) {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(b.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
