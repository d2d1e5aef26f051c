package recommend

import (
	"net/url"
	"strings"

	"github.com/kailas-cloud/finsite/internal/domain/taxonomy"
)

// DestinationKind tells the host how to follow a link.
type DestinationKind string

// Destination kinds.
const (
	KindPage   DestinationKind = "page"
	KindSearch DestinationKind = "search"
)

// Destination is where the host should go. The core never navigates itself.
type Destination struct {
	Kind  DestinationKind
	Page  string
	Query string
}

const searchMarker = "/search?q="

// pageAliases maps taxonomy ids to host page identifiers where they differ.
var pageAliases = map[string]string{
	"esg-sustainability": "esg-solutions",
}

// Destination maps a taxonomy href to a host destination. Search links become searches
// for the decoded query; nested pages are matched before areas; anything else becomes
// a search for id.
func (r *Resolver) Destination(href, id string) Destination {
	if i := strings.Index(href, searchMarker); i >= 0 {
		raw := href[i+len(searchMarker):]
		q, err := url.QueryUnescape(raw)
		if err != nil {
			q = raw
		}
		return Destination{Kind: KindSearch, Query: q}
	}

	if href != "" {
		for _, n := range r.nested() {
			if n.Href != "" && strings.Contains(href, n.Href) {
				return page(n.ID)
			}
		}
		for _, a := range r.tree.Areas() {
			if a.Href != "" && strings.Contains(href, a.Href) {
				return page(a.ID)
			}
		}
	}

	return Destination{Kind: KindSearch, Query: id}
}

func page(id string) Destination {
	if alias, ok := pageAliases[id]; ok {
		id = alias
	}
	return Destination{Kind: KindPage, Page: id}
}

// nested lists every non-area node, deepest first within each area.
func (r *Resolver) nested() []taxonomy.Item {
	var out []taxonomy.Item
	var walk func(id string)
	walk = func(id string) {
		for _, c := range r.tree.Children(id) {
			walk(c.ID)
			out = append(out, c)
		}
	}
	for _, a := range r.tree.Areas() {
		walk(a.ID)
	}
	return out
}
