package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// neededCmd represents the needed command
var neededCmd = &cobra.Command{
	Use:   "needed [item]",
	Short: "Show how many of each item is still required",
	Long: `Without arguments, lists every item that still has outstanding
requirements across quests, hideout upgrades and projects. With an item name,
shows just that item (fuzzy matching is fine: 'needed metl parts' works).`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, prog, store, err := computedStore(cmd.Context())
		if err != nil {
			return err
		}
		defer prog.Close()

		asJSON, _ := cmd.Flags().GetBool("json")

		if len(args) > 0 {
			query := strings.Join(args, " ")
			res, err := resolveName("item", query, itemCandidates(cat))
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"itemId":    res.ID,
					"name":      cat.ItemName(res.ID),
					"remaining": store.QuantityNeeded(res.ID),
				})
			}
			fmt.Printf("%s: %d needed\n", cat.ItemName(res.ID), store.QuantityNeeded(res.ID))
			valueRequirementNotice(store)
			return nil
		}

		totals := store.Totals()
		completed := store.Completed()
		remaining := store.Remaining()

		ids := make([]string, 0, len(remaining))
		for id := range remaining {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			if remaining[ids[i]] == remaining[ids[j]] {
				return ids[i] < ids[j]
			}
			return remaining[ids[i]] > remaining[ids[j]]
		})

		if asJSON {
			type row struct {
				ItemID    string `json:"itemId"`
				Name      string `json:"name"`
				Total     int    `json:"total"`
				Completed int    `json:"completed"`
				Remaining int    `json:"remaining"`
			}
			rows := make([]row, 0, len(ids))
			for _, id := range ids {
				rows = append(rows, row{id, cat.ItemName(id), totals[id], completed[id], remaining[id]})
			}
			return json.NewEncoder(os.Stdout).Encode(rows)
		}

		if len(ids) == 0 {
			fmt.Println("Nothing left to gather. Scrap away.")
			valueRequirementNotice(store)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "ITEM\tREMAINING\tCOMPLETED\tTOTAL\t")
		for _, id := range ids {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t\n", cat.ItemName(id), remaining[id], completed[id], totals[id])
		}
		w.Flush()
		valueRequirementNotice(store)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(neededCmd)
	neededCmd.Flags().Bool("json", false, "Output as JSON")
}
