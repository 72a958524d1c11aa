// Package requirements computes, for every item in the catalog, how much is
// required in total across all progression systems, how much of that is
// already satisfied by the user's completion progress, and how much remains
// outstanding. All functions are pure transformations over in-memory
// snapshots; only Store carries state (the cached last result).
package requirements

import (
	"github.com/mklnz/stashkeep/pkg/catalog"
)

// ItemRequirements maps item ids to required quantities. The map is sparse:
// a key that is present always has quantity > 0, and a missing key means
// zero. Consumers rely on key presence as a cheap "is this item relevant"
// check, so zero-valued entries must never be inserted.
type ItemRequirements map[string]int

// addEntries accumulates requirement entries into acc, skipping malformed
// entries (empty item id or non-positive quantity) so the sparse invariant
// holds.
func addEntries(acc ItemRequirements, entries []catalog.RequirementEntry) {
	for _, e := range entries {
		if e.ItemID == "" || e.Quantity <= 0 {
			continue
		}
		acc[e.ItemID] += e.Quantity
	}
}

// QuestRequirements sums the item requirements of every quest, ignoring
// completion state. Quests without requirement entries contribute nothing.
func QuestRequirements(quests []catalog.Quest) ItemRequirements {
	reqs := ItemRequirements{}
	for _, q := range quests {
		addEntries(reqs, q.RequiredItems)
	}
	return reqs
}

// HideoutRequirements sums the item requirements of every level of every
// module. Every level counts, not just the next one: a full hideout build-out
// needs all of them.
func HideoutRequirements(modules []catalog.HideoutModule) ItemRequirements {
	reqs := ItemRequirements{}
	for _, m := range modules {
		for _, lvl := range m.Levels {
			addEntries(reqs, lvl.RequiredItems)
		}
	}
	return reqs
}

// ProjectRequirements sums the item requirements of every phase of every
// project. Phases that only carry a category-value target contribute nothing
// here; callers detect them via HasValueRequirements.
func ProjectRequirements(projects []catalog.Project) ItemRequirements {
	reqs := ItemRequirements{}
	for _, p := range projects {
		for _, ph := range p.Phases {
			addEntries(reqs, ph.RequiredItems)
		}
	}
	return reqs
}

// Merge additively combines requirement maps key by key. Merging is
// commutative and associative; the input maps are not modified.
func Merge(maps ...ItemRequirements) ItemRequirements {
	out := ItemRequirements{}
	for _, m := range maps {
		for id, qty := range m {
			out[id] += qty
		}
	}
	return out
}

// CalculateItemRequirements returns the unified total-requirement map across
// quests, hideout modules and projects.
func CalculateItemRequirements(quests []catalog.Quest, modules []catalog.HideoutModule, projects []catalog.Project) ItemRequirements {
	return Merge(
		QuestRequirements(quests),
		HideoutRequirements(modules),
		ProjectRequirements(projects),
	)
}

// HasValueRequirements reports whether any project phase carries a
// category-value target. Such targets cannot be converted to exact item
// quantities and are excluded from all requirement maps; surfaces like the
// CLI and the API use this flag to tell users the maps are not the whole
// story.
func HasValueRequirements(projects []catalog.Project) bool {
	for _, p := range projects {
		for _, ph := range p.Phases {
			if len(ph.ValueRequirements) > 0 {
				return true
			}
		}
	}
	return false
}
