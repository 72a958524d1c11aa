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

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Track expedition project phases",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, phases and their completion state",
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
		fmt.Fprintln(w, "PROJECT\tPHASE\tSTATUS\tREQUIREMENTS\t")
		for _, p := range cat.Projects {
			for _, ph := range p.Phases {
				status := "-"
				if snap.ProjectCompleted(p.ID, ph.Phase) {
					status = "done"
				}
				reqs := make([]string, 0, len(ph.RequiredItems)+len(ph.ValueRequirements))
				for _, e := range ph.RequiredItems {
					reqs = append(reqs, fmt.Sprintf("%s x%d", cat.ItemName(e.ItemID), e.Quantity))
				}
				for category, target := range ph.ValueRequirements {
					reqs = append(reqs, fmt.Sprintf("%d value of %s (not counted)", target, category))
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t\n", p.Name, ph.Phase, status, strings.Join(reqs, ", "))
			}
		}
		return w.Flush()
	},
}

var projectDoneCmd = &cobra.Command{
	Use:   "done <project> <phase>",
	Short: "Mark a project phase completed",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProjectCompleted(cmd, args, true)
	},
}

var projectUndoCmd = &cobra.Command{
	Use:   "undo <project> <phase>",
	Short: "Mark a project phase not completed",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProjectCompleted(cmd, args, false)
	},
}

func setProjectCompleted(cmd *cobra.Command, args []string, completed bool) error {
	phase, err := strconv.Atoi(args[len(args)-1])
	if err != nil || phase < 1 {
		return fmt.Errorf("last argument must be a 1-based phase number, got %q", args[len(args)-1])
	}
	query := strings.Join(args[:len(args)-1], " ")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	res, err := resolveName("project", query, projectCandidates(cat))
	if err != nil {
		return err
	}

	var project *catalog.Project
	for i := range cat.Projects {
		if cat.Projects[i].ID == res.ID {
			project = &cat.Projects[i]
		}
	}
	var affected []string
	found := false
	for _, ph := range project.Phases {
		if ph.Phase != phase {
			continue
		}
		found = true
		for _, e := range ph.RequiredItems {
			affected = append(affected, e.ItemID)
		}
	}
	if !found {
		return fmt.Errorf("project %s has no phase %d", res.ID, phase)
	}

	prog, err := openProgress()
	if err != nil {
		return err
	}
	defer prog.Close()

	if err := withProgressLock(func() error {
		return prog.SetProjectCompleted(cmd.Context(), res.ID, phase, completed)
	}); err != nil {
		return err
	}

	verb := "completed"
	if !completed {
		verb = "reset"
	}
	fmt.Printf("Project %s phase %d %s.\n", res.ID, phase, verb)
	return printRemaining(cmd.Context(), cat, prog, affected)
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDoneCmd)
	projectCmd.AddCommand(projectUndoCmd)
}
