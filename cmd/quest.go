package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// questCmd represents the quest command
var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Track quest completion",
}

var questListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quests and their completion state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		prog, err := openProgress()
		if err != nil {
			return err
		}
		defer prog.Close()

		snap, err := prog.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "QUEST\tSTATUS\tITEMS\t")
		for _, q := range cat.Quests {
			status := "-"
			if snap.QuestCompleted(q.ID) {
				status = "done"
			}
			items := make([]string, 0, len(q.RequiredItems))
			for _, e := range q.RequiredItems {
				items = append(items, fmt.Sprintf("%s x%d", cat.ItemName(e.ItemID), e.Quantity))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t\n", q.Name, status, strings.Join(items, ", "))
		}
		return w.Flush()
	},
}

var questDoneCmd = &cobra.Command{
	Use:   "done <quest>",
	Short: "Mark a quest completed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setQuestCompleted(cmd, strings.Join(args, " "), true)
	},
}

var questUndoCmd = &cobra.Command{
	Use:   "undo <quest>",
	Short: "Mark a quest not completed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setQuestCompleted(cmd, strings.Join(args, " "), false)
	},
}

func setQuestCompleted(cmd *cobra.Command, query string, completed bool) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	res, err := resolveName("quest", query, questCandidates(cat))
	if err != nil {
		return err
	}

	prog, err := openProgress()
	if err != nil {
		return err
	}
	defer prog.Close()

	if err := withProgressLock(func() error {
		return prog.SetQuestCompleted(cmd.Context(), res.ID, completed)
	}); err != nil {
		return err
	}

	verb := "completed"
	if !completed {
		verb = "reset"
	}
	fmt.Printf("Quest %s %s.\n", res.ID, verb)

	var affected []string
	for _, q := range cat.Quests {
		if q.ID != res.ID {
			continue
		}
		for _, e := range q.RequiredItems {
			affected = append(affected, e.ItemID)
		}
	}
	return printRemaining(cmd.Context(), cat, prog, affected)
}

func init() {
	rootCmd.AddCommand(questCmd)
	questCmd.AddCommand(questListCmd)
	questCmd.AddCommand(questDoneCmd)
	questCmd.AddCommand(questUndoCmd)
}
