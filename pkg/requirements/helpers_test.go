package requirements

import (
	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/progress"
)

func re(itemID string, qty int) catalog.RequirementEntry {
	return catalog.RequirementEntry{ItemID: itemID, Quantity: qty}
}

func quest(id string, entries ...catalog.RequirementEntry) catalog.Quest {
	return catalog.Quest{ID: id, Name: id, RequiredItems: entries}
}

func lvl(n int, entries ...catalog.RequirementEntry) catalog.HideoutLevel {
	return catalog.HideoutLevel{Level: n, RequiredItems: entries}
}

func mod(id string, levels ...catalog.HideoutLevel) catalog.HideoutModule {
	return catalog.HideoutModule{ID: id, Name: id, Levels: levels}
}

func phase(n int, entries ...catalog.RequirementEntry) catalog.ProjectPhase {
	return catalog.ProjectPhase{Phase: n, RequiredItems: entries}
}

func valuePhase(n int, targets map[string]int) catalog.ProjectPhase {
	return catalog.ProjectPhase{Phase: n, ValueRequirements: targets}
}

func proj(id string, phases ...catalog.ProjectPhase) catalog.Project {
	return catalog.Project{ID: id, Name: id, Phases: phases}
}

func snapWithQuests(ids ...string) *progress.Snapshot {
	s := progress.NewSnapshot()
	for _, id := range ids {
		s.Quests[id] = progress.QuestProgress{Completed: true}
	}
	return s
}

func equalReqs(a, b ItemRequirements) bool {
	if len(a) != len(b) {
		return false
	}
	for id, qty := range a {
		if b[id] != qty {
			return false
		}
	}
	return true
}
