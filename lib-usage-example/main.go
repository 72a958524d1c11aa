package main

import (
	"fmt"

	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/progress"
	"github.com/mklnz/stashkeep/pkg/requirements"
)

// Minimal example of using the requirement engine as a library, without the
// CLI, the SQLite store or any provider.
func main() {
	cat := &catalog.Catalog{
		Quests: []catalog.Quest{
			{ID: "q1", Name: "Supply Run", RequiredItems: []catalog.RequirementEntry{
				{ItemID: "metal-parts", Quantity: 10},
				{ItemID: "spring", Quantity: 5},
			}},
			{ID: "q2", Name: "Stocking Up", RequiredItems: []catalog.RequirementEntry{
				{ItemID: "metal-parts", Quantity: 20},
			}},
		},
		Modules: []catalog.HideoutModule{
			{ID: "scrappy", Name: "Scrappy", Levels: []catalog.HideoutLevel{
				{Level: 1, RequiredItems: []catalog.RequirementEntry{{ItemID: "dog-collar", Quantity: 1}}},
				{Level: 2, RequiredItems: []catalog.RequirementEntry{{ItemID: "lemon", Quantity: 3}}},
			}},
		},
	}

	snap := progress.NewSnapshot()
	snap.Quests["q1"] = progress.QuestProgress{Completed: true}
	snap.Hideout[progress.HideoutKey("scrappy", 1)] = progress.HideoutProgress{
		ModuleID: "scrappy", Level: 1, Completed: true,
	}

	store := requirements.NewStore()
	store.Recompute(cat, snap)

	for id, qty := range store.Remaining() {
		fmt.Printf("%s: %d still needed\n", id, qty)
	}
	fmt.Println("metal-parts needed:", store.QuantityNeeded("metal-parts"))
}
