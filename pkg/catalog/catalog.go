package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"carousel-workers/internal/common/errors"
)

// Catalog is the immutable, validated template registry. It is built once at
// process start and is safe for concurrent reads; it exposes no mutation.
type Catalog struct {
	records []TemplateRecord
	byID    map[string]int
}

// New builds a Catalog from a slice of records, preserving their order.
// Malformed definitions yield a CATALOG_INVALID error.
func New(records []TemplateRecord) (*Catalog, error) {
	if len(records) == 0 {
		return nil, errors.NewCatalogInvalidError("catalog must contain at least one template")
	}

	byID := make(map[string]int, len(records))
	for i, r := range records {
		if err := r.validate(); err != nil {
			return nil, errors.NewCatalogInvalidError(err.Error())
		}
		if prev, dup := byID[r.ID]; dup {
			return nil, errors.NewCatalogInvalidError(
				fmt.Sprintf("duplicate template id %q (entries %d and %d)", r.ID, prev, i))
		}
		byID[r.ID] = i
	}

	// Copy so later mutation of the caller's slice cannot leak in.
	owned := make([]TemplateRecord, len(records))
	copy(owned, records)

	return &Catalog{records: owned, byID: byID}, nil
}

// MustNew is New for static definitions that are known valid at build time.
func MustNew(records []TemplateRecord) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads and validates a template definitions file (JSON).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}
	var reg TemplateRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}
	return New(reg.Templates)
}

// Default returns a catalog built from the built-in template table.
func Default() *Catalog {
	return MustNew(builtinTemplates)
}

// Records returns all templates in insertion order. The returned slice is a
// copy; the catalog itself stays immutable.
func (c *Catalog) Records() []TemplateRecord {
	out := make([]TemplateRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of templates in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Get looks a template up by id.
func (c *Catalog) Get(id string) (TemplateRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return TemplateRecord{}, false
	}
	return c.records[i], true
}

// ByModule returns the templates matching the given module type, further
// narrowed by subtype for value slides, in stable insertion order.
func (c *Catalog) ByModule(mt ModuleType, vs ValueSubtype) []TemplateRecord {
	var out []TemplateRecord
	for _, r := range c.records {
		if r.ModuleType != mt {
			continue
		}
		if mt == ModuleValue && vs != "" && r.ValueSubtype != vs {
			continue
		}
		out = append(out, r)
	}
	return out
}
