// Package config provides configuration loading for the disclosure pipeline.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Settings holds everything a pipeline run needs beyond the input file
// itself. The thresholds mirror long-standing reporting practice and are
// deliberately configuration, not code: the self-funding cutoff and the
// large-donation/large-expenditure bars were inherited from earlier
// reporting cycles and have no derivation to re-run.
type Settings struct {
	InputPath     string
	RosterPath    string
	OverridesPath string

	// Report and Election select the disclosure period, e.g. "Seven Day"
	// and "State General". Empty means no filtering on that axis.
	Report   string
	Election string

	// SelfFundingThreshold is the minimum token-set similarity score
	// (0-100) at which a donor is considered the candidate.
	SelfFundingThreshold int

	// LargeDonationMin is the donor-level aggregate at or above which
	// contributions appear in the large-donation extract.
	LargeDonationMin decimal.Decimal

	// LargeExpenditureMax is the payee-level aggregate at or below which
	// spending appears in the large-expenditure extract. Expenditures are
	// negative, so this is a negative number.
	LargeExpenditureMax decimal.Decimal
}

// Defaults for the configurable thresholds.
const (
	DefaultSelfFundingThreshold = 79
	DefaultLargeDonationMin     = 500
	DefaultLargeExpenditureMax  = -1000
)

// SetDefaults registers threshold defaults with viper. Call once before Load.
func SetDefaults() {
	viper.SetDefault("thresholds.self_funding", DefaultSelfFundingThreshold)
	viper.SetDefault("thresholds.large_donation", DefaultLargeDonationMin)
	viper.SetDefault("thresholds.large_expenditure", DefaultLargeExpenditureMax)
	viper.SetDefault("report.type", "")
	viper.SetDefault("report.election", "")
}

// Load assembles Settings from viper (config file, DISCLOSE_ environment
// variables, and bound flags).
func Load() Settings {
	return Settings{
		InputPath:            ExpandPath(viper.GetString("input")),
		RosterPath:           ExpandPath(viper.GetString("rosters")),
		OverridesPath:        ExpandPath(viper.GetString("overrides")),
		Report:               viper.GetString("report.type"),
		Election:             viper.GetString("report.election"),
		SelfFundingThreshold: viper.GetInt("thresholds.self_funding"),
		LargeDonationMin:     decimal.NewFromInt(viper.GetInt64("thresholds.large_donation")),
		LargeExpenditureMax:  decimal.NewFromInt(viper.GetInt64("thresholds.large_expenditure")),
	}
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
