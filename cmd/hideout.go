package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mklnz/stashkeep/pkg/catalog"
)

// hideoutCmd represents the hideout command
var hideoutCmd = &cobra.Command{
	Use:   "hideout",
	Short: "Track hideout module upgrades",
}

var hideoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hideout modules, levels and their completion state",
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
		fmt.Fprintln(w, "MODULE\tLEVEL\tSTATUS\tITEMS\t")
		for _, m := range cat.Modules {
			for _, lvl := range m.Levels {
				status := "-"
				if snap.HideoutCompleted(m.ID, lvl.Level) {
					status = "done"
				}
				items := make([]string, 0, len(lvl.RequiredItems))
				for _, e := range lvl.RequiredItems {
					items = append(items, fmt.Sprintf("%s x%d", cat.ItemName(e.ItemID), e.Quantity))
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t\n", m.Name, lvl.Level, status, strings.Join(items, ", "))
			}
		}
		return w.Flush()
	},
}

var hideoutDoneCmd = &cobra.Command{
	Use:   "done <module> <level>",
	Short: "Mark a module level completed",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setHideoutCompleted(cmd, args, true)
	},
}

var hideoutUndoCmd = &cobra.Command{
	Use:   "undo <module> <level>",
	Short: "Mark a module level not completed",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setHideoutCompleted(cmd, args, false)
	},
}

func setHideoutCompleted(cmd *cobra.Command, args []string, completed bool) error {
	level, err := strconv.Atoi(args[len(args)-1])
	if err != nil || level < 1 {
		return fmt.Errorf("last argument must be a 1-based level number, got %q", args[len(args)-1])
	}
	query := strings.Join(args[:len(args)-1], " ")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	res, err := resolveName("hideout module", query, moduleCandidates(cat))
	if err != nil {
		return err
	}

	var module *catalog.HideoutModule
	for i := range cat.Modules {
		if cat.Modules[i].ID == res.ID {
			module = &cat.Modules[i]
		}
	}
	var affected []string
	found := false
	for _, lvl := range module.Levels {
		if lvl.Level != level {
			continue
		}
		found = true
		for _, e := range lvl.RequiredItems {
			affected = append(affected, e.ItemID)
		}
	}
	if !found {
		return fmt.Errorf("module %s has no level %d", res.ID, level)
	}

	prog, err := openProgress()
	if err != nil {
		return err
	}
	defer prog.Close()

	if err := withProgressLock(func() error {
		return prog.SetHideoutCompleted(cmd.Context(), res.ID, level, completed)
	}); err != nil {
		return err
	}

	verb := "completed"
	if !completed {
		verb = "reset"
	}
	fmt.Printf("Hideout %s level %d %s.\n", res.ID, level, verb)
	return printRemaining(cmd.Context(), cat, prog, affected)
}

func init() {
	rootCmd.AddCommand(hideoutCmd)
	hideoutCmd.AddCommand(hideoutListCmd)
	hideoutCmd.AddCommand(hideoutDoneCmd)
	hideoutCmd.AddCommand(hideoutUndoCmd)
}
