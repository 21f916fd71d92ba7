// Package linkverify checks that the relative links in a generated site resolve.
package linkverify

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// BrokenLink is a relative link whose target is missing.
type BrokenLink struct {
	Page      string // page path relative to the output root
	URL       string
	Tag       string
	Attribute string
	Reason    string
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("%s: <%s %s=%q> (%s)", b.Page, b.Tag, b.Attribute, b.URL, b.Reason)
}

// Report summarizes one verification pass.
type Report struct {
	PagesChecked int
	LinksChecked int
	Broken       []BrokenLink
}

// Verifier checks pages below an output directory.
type Verifier struct {
	root  string
	pages map[string]*Page
}

// NewVerifier returns a verifier for the site rooted at outDir.
func NewVerifier(outDir string) *Verifier {
	return &Verifier{root: outDir, pages: make(map[string]*Page)}
}

// Verify checks every relative link in pages, given as slash paths relative to the
// output root. A link resolves when its target file exists; a fragment pointing into
// an HTML page must also name an element id on that page.
func (v *Verifier) Verify(ctx context.Context, pages []string) (*Report, error) {
	report := &Report{}
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		page, err := v.load(p)
		if err != nil {
			return report, fmt.Errorf("parse %s: %w", p, err)
		}
		report.PagesChecked++
		for _, link := range page.Links {
			if !ShouldVerifyLink(link) {
				continue
			}
			report.LinksChecked++
			if reason := v.check(p, page, link); reason != "" {
				report.Broken = append(report.Broken, BrokenLink{Page: p, URL: link.URL, Tag: link.Tag, Attribute: link.Attribute, Reason: reason})
			}
		}
	}
	sort.SliceStable(report.Broken, func(i, j int) bool {
		return report.Broken[i].Page < report.Broken[j].Page
	})
	return report, nil
}

func (v *Verifier) check(pagePath string, page *Page, link Link) string {
	u, err := url.Parse(link.URL)
	if err != nil {
		return "unparseable URL"
	}

	target := pagePath
	targetPage := page
	if u.Path != "" {
		target = path.Clean(path.Join(path.Dir(pagePath), u.Path))
		if target == ".." || strings.HasPrefix(target, "../") {
			return "points outside the output directory"
		}
		fi, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(target)))
		if err != nil {
			return "target does not exist"
		}
		if fi.IsDir() {
			target = path.Join(target, "index.html")
			if _, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(target))); err != nil {
				return "directory has no index.html"
			}
		}
		targetPage = nil
	}

	if u.Fragment == "" || !strings.HasSuffix(target, ".html") {
		return ""
	}
	if targetPage == nil {
		targetPage, err = v.load(target)
		if err != nil {
			return "target is not parseable HTML"
		}
	}
	if _, ok := targetPage.IDs[u.Fragment]; !ok {
		return "missing anchor #" + u.Fragment
	}
	return ""
}

func (v *Verifier) load(p string) (*Page, error) {
	if page, ok := v.pages[p]; ok {
		return page, nil
	}
	page, err := ExtractPage(filepath.Join(v.root, filepath.FromSlash(p)))
	if err != nil {
		return nil, err
	}
	v.pages[p] = page
	return page, nil
}
