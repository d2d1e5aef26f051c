package facet

import "sort"

// Dimension is one filterable axis of the catalog.
type Dimension string

// Facet dimension constants.
const (
	Industries     Dimension = "industries"
	ResourceTypes  Dimension = "resourceTypes"
	ProductClasses Dimension = "productClasses"
	ProblemAreas   Dimension = "problemAreas"
)

// Dimensions lists every dimension in display order.
var Dimensions = []Dimension{Industries, ResourceTypes, ProductClasses, ProblemAreas}

// IsValid checks if the dimension is one of the four known ones.
func (d Dimension) IsValid() bool {
	return d == Industries || d == ResourceTypes || d == ProductClasses || d == ProblemAreas
}

// Entry is a single facet value. Count is a static display number, not a live aggregate.
type Entry struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Count int    `yaml:"count" json:"count"`
}

// Table holds the ordered entries of every dimension.
type Table map[Dimension][]Entry

// Name resolves a facet id to its display name.
func (t Table) Name(d Dimension, id string) (string, bool) {
	for _, e := range t[d] {
		if e.ID == id {
			return e.Name, true
		}
	}
	return "", false
}

// Selection is the per-view set of selected facet ids, keyed by dimension.
type Selection struct {
	selected map[Dimension]map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() Selection {
	return Selection{selected: make(map[Dimension]map[string]struct{}, len(Dimensions))}
}

// Reconstruct rebuilds a selection from stored ids (storage hydration).
// Unknown dimensions are dropped.
func Reconstruct(ids map[Dimension][]string) Selection {
	s := NewSelection()
	for d, list := range ids {
		if !d.IsValid() {
			continue
		}
		for _, id := range list {
			s.add(d, id)
		}
	}
	return s
}

func (s *Selection) add(d Dimension, id string) {
	set, ok := s.selected[d]
	if !ok {
		set = make(map[string]struct{})
		s.selected[d] = set
	}
	set[id] = struct{}{}
}

// Toggle adds id to the dimension's set if absent, removes it otherwise.
// Returns true when id is selected after the call.
func (s *Selection) Toggle(d Dimension, id string) bool {
	if s.Has(d, id) {
		delete(s.selected[d], id)
		if len(s.selected[d]) == 0 {
			delete(s.selected, d)
		}
		return false
	}
	s.add(d, id)
	return true
}

// Has reports whether id is selected in dimension d.
func (s *Selection) Has(d Dimension, id string) bool {
	_, ok := s.selected[d][id]
	return ok
}

// Clear empties every dimension.
func (s *Selection) Clear() {
	s.selected = make(map[Dimension]map[string]struct{}, len(Dimensions))
}

// ActiveCount is the sum of set sizes across all dimensions.
func (s *Selection) ActiveCount() int {
	n := 0
	for _, set := range s.selected {
		n += len(set)
	}
	return n
}

// IDs returns the selected ids of d, sorted.
func (s *Selection) IDs(d Dimension) []string {
	set := s.selected[d]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Snapshot returns every non-empty dimension with its sorted ids.
func (s *Selection) Snapshot() map[Dimension][]string {
	out := make(map[Dimension][]string, len(s.selected))
	for _, d := range Dimensions {
		if len(s.selected[d]) > 0 {
			out[d] = s.IDs(d)
		}
	}
	return out
}

// ActiveLabels resolves selected ids to display names, in dimension then table order.
// Ids with no resolvable name are omitted.
func (s *Selection) ActiveLabels(t Table) []string {
	var labels []string
	for _, d := range Dimensions {
		set := s.selected[d]
		if len(set) == 0 {
			continue
		}
		for _, e := range t[d] {
			if _, ok := set[e.ID]; ok {
				labels = append(labels, e.Name)
			}
		}
	}
	return labels
}

// Equal reports whether two selections hold the same ids.
func (s *Selection) Equal(o *Selection) bool {
	if s.ActiveCount() != o.ActiveCount() {
		return false
	}
	for d, set := range s.selected {
		for id := range set {
			if !o.Has(d, id) {
				return false
			}
		}
	}
	return true
}
