package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/mklnz/stashkeep/internal/utils"
)

var cfgFile string

const (
	LOGO = `     _             _     _
 ___| |_ __ _  ___| |__ | | _____  ___ _ __
/ __| __/ _` + "`" + ` |/ __| '_ \| |/ / _ \/ _ \ '_ \
\__ \ || (_| |\__ \ | | |   <  __/  __/ |_) |
|___/\__\__,_||___/_| |_|_|\_\___|\___| .__/
                                      |_|
`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stashkeep",
	Short: "Keep-or-scrap helper for extraction looters.",
	Long: LOGO + `stashkeep tracks how many of each item your quests, hideout upgrades and
expedition projects still need, so you know what to keep and what to scrap.

Fetch the catalog once, mark progress as you play, and ask what's still needed.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stashkeep.yaml)")

	// Global flags
	rootCmd.PersistentFlags().String("dbpath", "", "Path to the progress SQLite DB (default is ~/.config/stashkeep/progress.sqlite)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to the catalog JSON file (default is next to the DB)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".stashkeep")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.stashkeep.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("provider", "metaforge")
	viper.SetDefault("raidtools.token", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
