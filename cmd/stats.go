package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints completion statistics per progression system.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, prog, store, err := computedStore(cmd.Context())
		if err != nil {
			return err
		}
		defer prog.Close()

		snap, err := prog.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		questsDone := 0
		for _, q := range cat.Quests {
			if snap.QuestCompleted(q.ID) {
				questsDone++
			}
		}
		levelsTotal, levelsDone := 0, 0
		for _, m := range cat.Modules {
			for _, lvl := range m.Levels {
				levelsTotal++
				if snap.HideoutCompleted(m.ID, lvl.Level) {
					levelsDone++
				}
			}
		}
		phasesTotal, phasesDone := 0, 0
		for _, p := range cat.Projects {
			for _, ph := range p.Phases {
				phasesTotal++
				if snap.ProjectCompleted(p.ID, ph.Phase) {
					phasesDone++
				}
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "SYSTEM\tDONE\tTOTAL\t")
		fmt.Fprintf(w, "quests\t%d\t%d\t\n", questsDone, len(cat.Quests))
		fmt.Fprintf(w, "hideout levels\t%d\t%d\t\n", levelsDone, levelsTotal)
		fmt.Fprintf(w, "project phases\t%d\t%d\t\n", phasesDone, phasesTotal)
		fmt.Fprintln(w, " \t \t \t")
		fmt.Fprintf(w, "items still needed\t%d\t \t\n", len(store.Remaining()))
		w.Flush()

		valueRequirementNotice(store)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
