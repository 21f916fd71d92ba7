package templates

// PageContext is the per-page state every render call needs. It is built fresh for
// each output file and passed explicitly; nothing is remembered between pages.
type PageContext struct {
	// Root is the relative prefix from the page back to the site root ("./", "../", ...).
	Root string
	// Title is the page title shown in the layout.
	Title string
	// Nav lists every page of the site for the layout's navigation.
	Nav *Navigation
}

// Navigation holds the site-wide page lists. Methods are ordered by owner, then name.
type Navigation struct {
	Files   []NavEntry
	Types   []NavEntry
	Methods []NavEntry
}

// NavEntry is a single navigation link. Href is already escaped and relative to the
// site root.
type NavEntry struct {
	Label string
	Href  string
}

type pageData struct {
	Root   string
	Title  string
	Entity any
}
