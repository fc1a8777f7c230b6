// Package cmd implements the stocksync CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/kjdelacruz/stocksync/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "stocksync",
		Short: "Reconcile marketplace order exports against inventory",
		Long: "stocksync imports Shopee and TikTok order-export spreadsheets,\n" +
			"matches their free-text product names against the inventory catalog,\n" +
			"and applies stock movements exactly once per order line.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(taxesCmd())
	rootCmd.AddCommand(returnsCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(jobsCmd())
	rootCmd.AddCommand(versionCommand())
}

func initConfig() {
	viper.SetEnvPrefix("STOCKSYNC")
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
