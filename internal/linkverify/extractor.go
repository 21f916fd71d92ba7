package linkverify

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Link represents an extracted link from HTML content.
type Link struct {
	URL       string // The URL or path
	Tag       string // HTML tag (a, img, script, link)
	Attribute string // Attribute containing the link (href, src)
}

// Page is the parsed view of one HTML file needed for verification.
type Page struct {
	Links []Link
	IDs   map[string]struct{}
}

// ExtractPage parses an HTML file.
func ExtractPage(htmlPath string) (*Page, error) {
	file, err := os.Open(filepath.Clean(htmlPath))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	return ExtractPageFromReader(file)
}

// ExtractPageFromReader collects every link and element id in the document.
func ExtractPageFromReader(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	page := &Page{IDs: make(map[string]struct{})}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				page.IDs[id] = struct{}{}
			}
			if link, ok := elementLink(n); ok {
				page.Links = append(page.Links, link)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return page, nil
}

func elementLink(n *html.Node) (Link, bool) {
	var attr string
	switch n.Data {
	case "a", "link":
		attr = "href"
	case "img", "script", "video", "audio", "source":
		attr = "src"
	default:
		return Link{}, false
	}
	v := getAttr(n, attr)
	if v == "" {
		return Link{}, false
	}
	return Link{URL: v, Tag: n.Data, Attribute: attr}, true
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// ShouldVerifyLink reports whether a link points into the generated site. Absolute
// URLs, special protocols and root-relative paths are left alone.
func ShouldVerifyLink(link Link) bool {
	if link.URL == "" {
		return false
	}
	for _, prefix := range []string{"mailto:", "tel:", "javascript:", "data:", "/"} {
		if strings.HasPrefix(link.URL, prefix) {
			return false
		}
	}
	u, err := url.Parse(link.URL)
	if err != nil {
		return true
	}
	return u.Scheme == "" && u.Host == ""
}
