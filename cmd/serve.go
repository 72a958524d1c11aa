package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mklnz/stashkeep/internal/server"
	"github.com/mklnz/stashkeep/pkg/requirements"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stashkeep JSON API server",
	Long: `Serve the computed requirement maps and the progress tracker over HTTP.
Progress changes made through the API trigger a synchronous recompute, and a
websocket feed at /ws tells clients when to re-read.`,
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
		store := requirements.NewStore()
		store.Recompute(cat, snap)

		user, _ := cmd.Flags().GetString("username")
		pass, _ := cmd.Flags().GetString("password")
		addr, _ := cmd.Flags().GetString("bind")

		return server.New(cat, prog, store, user, pass).Start(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("bind", "b", ":8483", "Address to bind the server to")
	serveCmd.Flags().StringP("username", "u", "", "Username for basic auth (optional)")
	serveCmd.Flags().StringP("password", "p", "", "Password for basic auth (optional)")
}
