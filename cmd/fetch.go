package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mklnz/stashkeep/internal/utils"
	"github.com/mklnz/stashkeep/pkg/providers"
	"github.com/mklnz/stashkeep/pkg/providers/metaforge"
	"github.com/mklnz/stashkeep/pkg/providers/raidtools"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the game catalog from a community data provider",
	Long: `Fetch items, quests, hideout modules and expedition projects from a
community data provider and cache them locally. Everything else works off the
cached catalog, so this only needs re-running after game updates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		providers.Register(metaforge.New())
		providers.Register(raidtools.New(viper.GetString("raidtools.token")))

		name, _ := cmd.Flags().GetString("provider")
		if name == "" {
			name = viper.GetString("provider")
		}
		provider, err := providers.ByName(name)
		if err != nil {
			return err
		}

		utils.Log.Infof("Fetching catalog from %s...", provider.Name())
		cat, err := provider.FetchCatalog(cmd.Context())
		if err != nil {
			return err
		}

		path, err := resolvedCatalogPath()
		if err != nil {
			return err
		}
		if err := cat.SaveFile(path); err != nil {
			return err
		}

		fmt.Printf("Saved %d items, %d quests, %d hideout modules, %d projects to %s\n",
			len(cat.Items), len(cat.Quests), len(cat.Modules), len(cat.Projects), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringP("provider", "p", "", "Data provider to fetch from (metaforge, raidtools)")
}
