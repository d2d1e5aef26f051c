package recommend

import "github.com/kailas-cloud/finsite/internal/domain/taxonomy"

// Tree is the read side of the solution taxonomy.
type Tree interface {
	Find(id string) (taxonomy.Item, bool)
	ParentArea(id string) (taxonomy.Item, bool)
	IsArea(id string) bool
	Children(id string) []taxonomy.Item
	Related(id string) []string
	FAQs(id string) []taxonomy.FAQ
	Areas() []taxonomy.Item
	Defaults() taxonomy.Defaults
}
