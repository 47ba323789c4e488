// Command disclose turns a campaign-finance disclosure export into
// per-district candidate summaries and large-transaction extracts.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openalaska/disclose/internal/common"
	"github.com/openalaska/disclose/internal/config"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "disclose",
		Short: "Campaign-finance disclosure analysis",
		Long: `disclose ingests a campaign disclosure transaction export, normalizes it,
attributes each candidate to a legislative district, and produces the
recurring per-district summaries and large-donation extracts analysts
publish each reporting period.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/disclose/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringP("input", "i", "", "disclosure export CSV")
	rootCmd.PersistentFlags().String("rosters", "", "district roster YAML")
	rootCmd.PersistentFlags().String("overrides", "", "per-cycle field override YAML")
	rootCmd.PersistentFlags().String("report", "", `report type filter, e.g. "Seven Day"`)
	rootCmd.PersistentFlags().String("election", "", `election type filter, e.g. "State General"`)

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	_ = viper.BindPFlag("rosters", rootCmd.PersistentFlags().Lookup("rosters"))
	_ = viper.BindPFlag("overrides", rootCmd.PersistentFlags().Lookup("overrides"))
	_ = viper.BindPFlag("report.type", rootCmd.PersistentFlags().Lookup("report"))
	_ = viper.BindPFlag("report.election", rootCmd.PersistentFlags().Lookup("election"))

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(districtCmd())
	rootCmd.AddCommand(donorsCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(unassignedCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/disclose", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DISCLOSE")
	viper.AutomaticEnv()

	config.SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := common.SetupLogger(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("disclose version", "version", version)
		},
	}
}
