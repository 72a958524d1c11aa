// Package catalog defines the static game data consumed by the requirement
// engine: items, quests, hideout modules and expedition projects. The catalog
// is fetched from a community data provider and cached as a local JSON file;
// it is read-only for everything downstream.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// RequirementEntry is a single item quantity needed by a quest, hideout level
// or project phase.
type RequirementEntry struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Item is a lootable item. Value and Weight are carried for display only.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
}

// Quest is a single quest. Quests without item requirements are common
// (kill/explore objectives) and carry an empty RequiredItems list.
type Quest struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	RequiredItems []RequirementEntry `json:"requiredItemIds,omitempty"`
}

// HideoutLevel is one upgrade step of a hideout module. Level numbers are
// 1-based.
type HideoutLevel struct {
	Level         int                `json:"level"`
	RequiredItems []RequirementEntry `json:"requirements,omitempty"`
}

// HideoutModule is an upgradeable hideout station with ordered levels.
type HideoutModule struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Levels []HideoutLevel `json:"levels"`
}

// ProjectPhase is one phase of an expedition project. A phase carries either
// exact item requirements or a category-value target (e.g. "250000 value of
// Combat Items"). Value targets cannot be converted to item quantities and
// are excluded from requirement maps; see requirements.Store.HasValueRequirements.
type ProjectPhase struct {
	Phase             int                `json:"phase"`
	RequiredItems     []RequirementEntry `json:"requirements,omitempty"`
	ValueRequirements map[string]int     `json:"valueRequirements,omitempty"`
}

// Project is a multi-phase expedition project.
type Project struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Phases []ProjectPhase `json:"phases"`
}

// Catalog bundles everything a provider fetches in one run.
type Catalog struct {
	Source    string          `json:"source"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Items     []Item          `json:"items"`
	Quests    []Quest         `json:"quests"`
	Modules   []HideoutModule `json:"hideoutModules"`
	Projects  []Project       `json:"projects"`
}

// ItemByID returns the item with the given id, or nil.
func (c *Catalog) ItemByID(id string) *Item {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemName returns the display name for an item id, falling back to the id
// itself when the item is not in the catalog.
func (c *Catalog) ItemName(id string) string {
	if it := c.ItemByID(id); it != nil && it.Name != "" {
		return it.Name
	}
	return id
}

// LoadFile reads a catalog previously written by SaveFile.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return &c, nil
}

// SaveFile writes the catalog as indented JSON, replacing any existing file.
func (c *Catalog) SaveFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
