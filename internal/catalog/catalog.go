// Package catalog is the immutable, statically defined store of products, resources,
// keyword index, facet tables and the solution taxonomy. It is loaded once at startup.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/finsite/internal/domain/facet"
	"github.com/kailas-cloud/finsite/internal/domain/taxonomy"
)

//go:embed catalog.yaml
var defaultDocument []byte

// Product is a catalog product.
type Product struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Thumbnail   string `yaml:"thumbnail" json:"thumbnail"`
	Benefit     string `yaml:"benefit" json:"benefit"`
	Description string `yaml:"description" json:"description"`
	Class       string `yaml:"class" json:"class"`
	CTA         string `yaml:"cta" json:"cta"`
}

// SearchFields returns the fields matched by the text filter.
func (p Product) SearchFields() []string {
	return []string{p.Name, p.Benefit, p.Description}
}

// Resource is a report, webinar, guide or paper.
type Resource struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Type        string   `yaml:"type" json:"type"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
}

// SearchFields returns the fields matched by the text filter.
func (r Resource) SearchFields() []string {
	return []string{r.Title, r.Type, r.Description}
}

// KeywordEntry is a static autosuggest entry.
type KeywordEntry struct {
	ID          string `yaml:"id" json:"id"`
	Term        string `yaml:"term" json:"term"`
	Category    string `yaml:"category" json:"category"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
}

// SearchFields returns the fields matched by the suggestion filter.
func (k KeywordEntry) SearchFields() []string {
	return []string{k.Term, k.Category, k.Description}
}

// AnswerCard is the short summary shown above search results.
type AnswerCard struct {
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
}

// Category is a product category shown in the discovery drawer.
type Category struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Products    []string `yaml:"products" json:"products"`
}

// News is a market news headline.
type News struct {
	ID        string `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title"`
	Summary   string `yaml:"summary" json:"summary"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
	Category  string `yaml:"category" json:"category"`
}

// Ticker is a trending instrument.
type Ticker struct {
	Symbol        string `yaml:"symbol" json:"symbol"`
	Name          string `yaml:"name" json:"name"`
	Price         string `yaml:"price" json:"price"`
	Change        string `yaml:"change" json:"change"`
	ChangePercent string `yaml:"change_percent" json:"change_percent"`
}

// document mirrors the on-disk YAML layout.
type document struct {
	Products        []Product             `yaml:"products"`
	Resources       []Resource            `yaml:"resources"`
	Keywords        []KeywordEntry        `yaml:"keywords"`
	Facets          facet.Table           `yaml:"facets"`
	AnswerCards     map[string]AnswerCard `yaml:"answer_cards"`
	Categories      []Category            `yaml:"categories"`
	PopularSearches []string              `yaml:"popular_searches"`
	Market          struct {
		News    []News   `yaml:"news"`
		Tickers []Ticker `yaml:"tickers"`
	} `yaml:"market"`
	Taxonomy struct {
		Areas    []taxonomy.Node   `yaml:"areas"`
		Defaults taxonomy.Defaults `yaml:"defaults"`
	} `yaml:"taxonomy"`
}

// Catalog is the loaded, read-only data set. Accessors return shared slices; callers must not mutate them.
type Catalog struct {
	doc      document
	products map[string]int
	tree     *taxonomy.Tree
}

// Default parses the embedded catalog document.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads a catalog document from path. An empty path loads the embedded document.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for d := range doc.Facets {
		if !d.IsValid() {
			return nil, fmt.Errorf("catalog: unknown facet dimension %q", d)
		}
	}

	products := make(map[string]int, len(doc.Products))
	for i, p := range doc.Products {
		if _, dup := products[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		products[p.ID] = i
	}

	tree, err := taxonomy.New(doc.Taxonomy.Areas, doc.Taxonomy.Defaults)
	if err != nil {
		return nil, fmt.Errorf("catalog taxonomy: %w", err)
	}

	return &Catalog{doc: doc, products: products, tree: tree}, nil
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []Product { return c.doc.Products }

// Product returns a product by id.
func (c *Catalog) Product(id string) (Product, bool) {
	i, ok := c.products[id]
	if !ok {
		return Product{}, false
	}
	return c.doc.Products[i], true
}

// Resources returns every resource in catalog order.
func (c *Catalog) Resources() []Resource { return c.doc.Resources }

// Keywords returns the autosuggest index.
func (c *Catalog) Keywords() []KeywordEntry { return c.doc.Keywords }

// Facets returns the static facet tables.
func (c *Catalog) Facets() facet.Table { return c.doc.Facets }

// AnswerCard returns the card stored under key.
func (c *Catalog) AnswerCard(key string) (AnswerCard, bool) {
	card, ok := c.doc.AnswerCards[key]
	return card, ok
}

// Categories returns the product categories.
func (c *Catalog) Categories() []Category { return c.doc.Categories }

// PopularSearches returns the suggested queries.
func (c *Catalog) PopularSearches() []string { return c.doc.PopularSearches }

// News returns the market headlines.
func (c *Catalog) News() []News { return c.doc.Market.News }

// Tickers returns the trending instruments.
func (c *Catalog) Tickers() []Ticker { return c.doc.Market.Tickers }

// Taxonomy returns the solution-area tree.
func (c *Catalog) Taxonomy() *taxonomy.Tree { return c.tree }

// Check reports whether the catalog has the minimum data the engines need.
func (c *Catalog) Check() error {
	if len(c.doc.Products) == 0 {
		return fmt.Errorf("catalog has no products")
	}
	if c.tree.Len() == 0 {
		return fmt.Errorf("catalog has no taxonomy")
	}
	return nil
}
