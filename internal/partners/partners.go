// Package partners serves the static partner-discount dataset. The data
// is compiled into the binary and immutable at runtime; the council
// updates it by editing partners.json and redeploying.
package partners

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

//go:embed partners.json
var partnersJSON []byte

// CategoryAll is the pseudo-category matching every partner.
const CategoryAll = "전체"

// Catalog is a read-only view over the partner dataset.
type Catalog struct {
	partners   []models.Partner
	byID       map[int]models.Partner
	categories []string
}

// Load parses the embedded dataset.
func Load() (*Catalog, error) {
	return NewCatalog(partnersJSON)
}

// NewCatalog builds a Catalog from raw JSON. Used by Load and by tests
// that need a dataset of their own.
func NewCatalog(data []byte) (*Catalog, error) {
	var list []models.Partner
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode partner dataset: %w", err)
	}

	byID := make(map[int]models.Partner, len(list))
	seen := make(map[string]bool)
	var categories []string
	for _, p := range list {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate partner id %d in dataset", p.ID)
		}
		byID[p.ID] = p
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return &Catalog{partners: list, byID: byID, categories: categories}, nil
}

// All returns every partner in dataset order.
func (c *Catalog) All() []models.Partner {
	out := make([]models.Partner, len(c.partners))
	copy(out, c.partners)
	return out
}

// Get returns the partner with the given id.
func (c *Catalog) Get(id int) (models.Partner, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the distinct categories in dataset order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Filter returns partners matching a category and a free-text keyword.
// An empty category or CategoryAll matches everything; the keyword is
// matched case-insensitively against name, address and benefits.
func (c *Catalog) Filter(category, keyword string) []models.Partner {
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	var out []models.Partner
	for _, p := range c.partners {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if keyword != "" && !matchesKeyword(p, keyword) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesKeyword(p models.Partner, keyword string) bool {
	if strings.Contains(strings.ToLower(p.Name), keyword) ||
		strings.Contains(strings.ToLower(p.Address), keyword) {
		return true
	}
	for _, b := range p.Benefits {
		if strings.Contains(strings.ToLower(b), keyword) {
			return true
		}
	}
	return false
}
