package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DecorationDef is one entry of the collaborator-supplied catalog.
type DecorationDef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

type Catalog struct {
	defs []DecorationDef
	byID map[string]DecorationDef
}

func (c *Catalog) Defs() []DecorationDef { return c.defs }

func (c *Catalog) Get(id string) (DecorationDef, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// DefaultCatalog is the built-in shop, used when no catalog file is given.
func DefaultCatalog() *Catalog {
	c, err := newCatalog([]DecorationDef{
		{ID: "plant", Name: "🌱 Plant", Cost: 5},
		{ID: "lamp", Name: "💡 Lamp", Cost: 8},
		{ID: "poster", Name: "🖼️ Poster", Cost: 10},
		{ID: "bookshelf", Name: "📚 Bookshelf", Cost: 12},
		{ID: "desk", Name: "🪑 Desk", Cost: 15},
		{ID: "carpet", Name: "🟫 Carpet", Cost: 18},
		{ID: "window", Name: "🪟 Window", Cost: 20},
		{ID: "mirror", Name: "🪞 Mirror", Cost: 25},
	})
	if err != nil {
		panic(err) // built-in defs are static
	}
	return c
}

// LoadCatalog reads a JSON array of decoration defs from disk. The file
// is external data: ids must be unique and non-empty, costs positive.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var defs []DecorationDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c, err := newCatalog(defs)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func newCatalog(defs []DecorationDef) (*Catalog, error) {
	byID := make(map[string]DecorationDef, len(defs))
	for _, d := range defs {
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("decoration with empty id")
		}
		if d.Cost <= 0 {
			return nil, fmt.Errorf("decoration %q: cost must be positive", d.ID)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate decoration id %q", d.ID)
		}
		byID[d.ID] = d
	}
	return &Catalog{defs: defs, byID: byID}, nil
}

// PurchaseDecoration adds a decoration to a building, paid from the
// global wallet only; the owning city's local wallet is untouched. All
// checks run before any mutation.
func (s *Service) PurchaseDecoration(ctx context.Context, buildingID, decorationID string, cost int) error {
	if strings.TrimSpace(decorationID) == "" {
		return ValidationError{Field: "decorationId", Reason: "must not be empty"}
	}
	if cost < 0 {
		return ValidationError{Field: "cost", Reason: "must not be negative"}
	}
	building, _, ok := s.FindBuilding(buildingID)
	if !ok {
		return NotFoundError{Kind: "building", ID: buildingID}
	}
	if building.HasDecoration(decorationID) {
		return AlreadyOwnedError{BuildingID: buildingID, DecorationID: decorationID}
	}
	if s.state.TotalCurrency < cost {
		return InsufficientFundsError{Cost: cost, Available: s.state.TotalCurrency}
	}

	building.Decorations = append(building.Decorations, decorationID)
	s.state.TotalCurrency -= cost

	return s.saveKeys(ctx, KeyCollections, KeyTotalCurrency)
}
