// Package taxonomy holds the solution-area tree used for navigation and recommendations.
//
// Nodes are stored in an arena keyed by id. Children are owned by their parent; related
// links are plain ids resolved through the arena at read time.
package taxonomy

import "fmt"

// FAQ is a common customer question pointing at a destination href.
type FAQ struct {
	ID       string `yaml:"id" json:"id"`
	Question string `yaml:"question" json:"question"`
	Href     string `yaml:"href" json:"href"`
}

// Node is a solution area or nested sub-solution as declared in the catalog document.
type Node struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Href        string   `yaml:"href"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	FAQs        []FAQ    `yaml:"faqs"`
	Related     []string `yaml:"related"`
	Children    []Node   `yaml:"children"`
}

// Item is the flat, non-owning view of a node. Tags let the host pick an icon.
type Item struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Href        string   `yaml:"href" json:"href"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
}

// Defaults are the global fallback lists used when a page is not part of the tree.
type Defaults struct {
	Related []Item `yaml:"related"`
	FAQs    []FAQ  `yaml:"faqs"`
}

type record struct {
	item     Item
	faqs     []FAQ
	related  []string
	children []string
	area     string // id of the top-level area this node belongs to
}

// Tree is an immutable arena of taxonomy nodes.
type Tree struct {
	areas    []string
	nodes    map[string]*record
	defaults Defaults
}

// New flattens the declared areas into an arena. Every id in the tree must be unique.
func New(areas []Node, defaults Defaults) (*Tree, error) {
	t := &Tree{
		nodes:    make(map[string]*record),
		defaults: defaults,
	}
	for i := range areas {
		if err := t.add(&areas[i], areas[i].ID); err != nil {
			return nil, err
		}
		t.areas = append(t.areas, areas[i].ID)
	}
	return t, nil
}

func (t *Tree) add(n *Node, area string) error {
	if n.ID == "" {
		return fmt.Errorf("taxonomy node %q has empty id", n.Title)
	}
	if _, dup := t.nodes[n.ID]; dup {
		return fmt.Errorf("duplicate taxonomy id %q", n.ID)
	}
	rec := &record{
		item: Item{
			ID:          n.ID,
			Title:       n.Title,
			Href:        n.Href,
			Description: n.Description,
			Tags:        n.Tags,
		},
		faqs:    n.FAQs,
		related: n.Related,
		area:    area,
	}
	t.nodes[n.ID] = rec
	for i := range n.Children {
		if err := t.add(&n.Children[i], area); err != nil {
			return err
		}
		rec.children = append(rec.children, n.Children[i].ID)
	}
	return nil
}

// Find returns the node with the given id at any depth.
func (t *Tree) Find(id string) (Item, bool) {
	rec, ok := t.nodes[id]
	if !ok {
		return Item{}, false
	}
	return rec.item, true
}

// ParentArea returns the top-level area for id: the area itself when id names one,
// otherwise the area whose subtree contains id.
func (t *Tree) ParentArea(id string) (Item, bool) {
	rec, ok := t.nodes[id]
	if !ok {
		return Item{}, false
	}
	return t.nodes[rec.area].item, true
}

// IsArea reports whether id names a top-level area.
func (t *Tree) IsArea(id string) bool {
	rec, ok := t.nodes[id]
	return ok && rec.area == id
}

// Children returns the direct children of id in declaration order.
func (t *Tree) Children(id string) []Item {
	rec, ok := t.nodes[id]
	if !ok {
		return nil
	}
	out := make([]Item, 0, len(rec.children))
	for _, c := range rec.children {
		out = append(out, t.nodes[c].item)
	}
	return out
}

// Related returns the declared related ids of id, unresolved.
func (t *Tree) Related(id string) []string {
	if rec, ok := t.nodes[id]; ok {
		return rec.related
	}
	return nil
}

// FAQs returns the questions declared directly on id.
func (t *Tree) FAQs(id string) []FAQ {
	if rec, ok := t.nodes[id]; ok {
		return rec.faqs
	}
	return nil
}

// Areas returns the top-level areas in declaration order.
func (t *Tree) Areas() []Item {
	out := make([]Item, 0, len(t.areas))
	for _, id := range t.areas {
		out = append(out, t.nodes[id].item)
	}
	return out
}

// Defaults returns the global fallback lists.
func (t *Tree) Defaults() Defaults { return t.defaults }

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }
