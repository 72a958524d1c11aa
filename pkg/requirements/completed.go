package requirements

import (
	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/progress"
)

// CompletedRequirements returns the portion of the total requirements that is
// already satisfied: an entity's item quantities are included only when that
// exact entity (quest, module level, project phase) is marked completed in
// the snapshot.
//
// Levels and phases are evaluated independently through the shared composite
// key codec; completing hideout level 2 says nothing about level 1. Progress
// entries that reference entities missing from the catalog simply never
// match. A nil snapshot yields an empty map.
func CompletedRequirements(snap *progress.Snapshot, quests []catalog.Quest, modules []catalog.HideoutModule, projects []catalog.Project) ItemRequirements {
	reqs := ItemRequirements{}
	if snap == nil {
		return reqs
	}

	for _, q := range quests {
		if snap.Quests[q.ID].Completed {
			addEntries(reqs, q.RequiredItems)
		}
	}

	for _, m := range modules {
		for _, lvl := range m.Levels {
			if snap.Hideout[progress.HideoutKey(m.ID, lvl.Level)].Completed {
				addEntries(reqs, lvl.RequiredItems)
			}
		}
	}

	for _, p := range projects {
		for _, ph := range p.Phases {
			if snap.Projects[progress.ProjectKey(p.ID, ph.Phase)].Completed {
				addEntries(reqs, ph.RequiredItems)
			}
		}
	}

	return reqs
}
