package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mklnz/stashkeep/internal/utils"
	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/match"
	"github.com/mklnz/stashkeep/pkg/progress"
	"github.com/mklnz/stashkeep/pkg/requirements"
)

func resolvedDBPath() (string, error) {
	dbPath, _ := rootCmd.PersistentFlags().GetString("dbpath")
	return utils.GetAbsDBPath(dbPath)
}

func resolvedCatalogPath() (string, error) {
	catalogPath, _ := rootCmd.PersistentFlags().GetString("catalog")
	return utils.GetAbsCatalogPath(catalogPath)
}

// loadCatalog reads the locally cached catalog, telling the user to run fetch
// first when there is none.
func loadCatalog() (*catalog.Catalog, error) {
	path, err := resolvedCatalogPath()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no catalog at %s, run 'stashkeep fetch' first", path)
		}
		return nil, err
	}
	return cat, nil
}

func openProgress() (*progress.Store, error) {
	path, err := resolvedDBPath()
	if err != nil {
		return nil, err
	}
	return progress.Open(path)
}

// withProgressLock runs fn while holding the cross-process database write
// lock.
func withProgressLock(fn func() error) error {
	dbPath, _ := rootCmd.PersistentFlags().GetString("dbpath")
	lock, err := utils.NewDBLock(dbPath)
	if err != nil {
		return err
	}
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return fn()
}

// computedStore loads everything and returns a recomputed requirement store.
func computedStore(ctx context.Context) (*catalog.Catalog, *progress.Store, *requirements.Store, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, nil, nil, err
	}
	prog, err := openProgress()
	if err != nil {
		return nil, nil, nil, err
	}
	snap, err := prog.Snapshot(ctx)
	if err != nil {
		prog.Close()
		return nil, nil, nil, err
	}
	store := requirements.NewStore()
	store.Recompute(cat, snap)
	return cat, prog, store, nil
}

func itemCandidates(cat *catalog.Catalog) []match.Candidate {
	out := make([]match.Candidate, 0, len(cat.Items))
	for _, it := range cat.Items {
		out = append(out, match.Candidate{ID: it.ID, Name: it.Name})
	}
	return out
}

func questCandidates(cat *catalog.Catalog) []match.Candidate {
	out := make([]match.Candidate, 0, len(cat.Quests))
	for _, q := range cat.Quests {
		out = append(out, match.Candidate{ID: q.ID, Name: q.Name})
	}
	return out
}

func moduleCandidates(cat *catalog.Catalog) []match.Candidate {
	out := make([]match.Candidate, 0, len(cat.Modules))
	for _, m := range cat.Modules {
		out = append(out, match.Candidate{ID: m.ID, Name: m.Name})
	}
	return out
}

func projectCandidates(cat *catalog.Catalog) []match.Candidate {
	out := make([]match.Candidate, 0, len(cat.Projects))
	for _, p := range cat.Projects {
		out = append(out, match.Candidate{ID: p.ID, Name: p.Name})
	}
	return out
}

// resolveName fuzzily resolves a user-typed name, or fails with suggestions.
func resolveName(kind, query string, candidates []match.Candidate) (match.Result, error) {
	res, ok := match.Resolve(query, candidates)
	if ok {
		if res.Distance > 0 {
			utils.Log.Debugf("matched %s %q to %s (distance %d)", kind, query, res.ID, res.Distance)
		}
		return res, nil
	}

	suggestions := match.Suggestions(query, candidates, 3)
	if len(suggestions) == 0 {
		return match.Result{}, fmt.Errorf("unknown %s: %q", kind, query)
	}
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.ID)
	}
	return match.Result{}, fmt.Errorf("unknown %s: %q (did you mean %s?)", kind, query, strings.Join(names, ", "))
}

// printRemaining recomputes the requirement maps from a fresh snapshot and
// reports the updated remaining count for the given item ids.
func printRemaining(ctx context.Context, cat *catalog.Catalog, prog *progress.Store, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	snap, err := prog.Snapshot(ctx)
	if err != nil {
		return err
	}
	store := requirements.NewStore()
	store.Recompute(cat, snap)

	seen := map[string]bool{}
	for _, id := range itemIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		fmt.Printf("  %s: %d still needed\n", cat.ItemName(id), store.QuantityNeeded(id))
	}
	return nil
}

// valueRequirementNotice prints the documented-gap warning when the catalog
// contains category-value project requirements that the maps cannot reflect.
func valueRequirementNotice(store *requirements.Store) {
	if store.HasValueRequirements() {
		fmt.Fprintln(os.Stderr, "Note: some project phases have value-based requirements that are not reflected in item counts.")
	}
}
