package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/meenmo/cdslib/utils"
)

// File is the cdsprice command configuration.
type File struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Pricing PricingConfig `mapstructure:"pricing"`
	Curves  CurvesConfig  `mapstructure:"curves"`
	Trades  []TradeConfig `mapstructure:"trades"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// PricingConfig overrides DefaultConfig.
type PricingConfig struct {
	BatchWorkers      int    `mapstructure:"batch_workers"`
	HorizonDayCount   string `mapstructure:"horizon_day_count"`
	ParSpreadDecimals int32  `mapstructure:"par_spread_decimals"`
	DefaultDayCount   string `mapstructure:"default_day_count"`
	MaxPartitions     int    `mapstructure:"max_partitions"`
}

// CurvesConfig describes the curve snapshot shared by every trade.
type CurvesConfig struct {
	Discount CurveConfig `mapstructure:"discount"`
	Survival CurveConfig `mapstructure:"survival"`
}

// CurveConfig is either a flat curve (Rate is the continuously compounded rate
// or hazard) or a pillar curve (Times/Factors).
type CurveConfig struct {
	Name    string    `mapstructure:"name"`
	Type    string    `mapstructure:"type"`
	Rate    float64   `mapstructure:"rate"`
	Times   []float64 `mapstructure:"times"`
	Factors []float64 `mapstructure:"factors"`
}

// TradeConfig is one CDS trade. Dates are YYYY-MM-DD.
type TradeConfig struct {
	TradeID                 string  `mapstructure:"trade_id"`
	Notional                float64 `mapstructure:"notional"`
	ParSpreadBP             string  `mapstructure:"par_spread_bp"`
	Direction               string  `mapstructure:"direction"`
	StartDate               string  `mapstructure:"start_date"`
	MaturityDate            string  `mapstructure:"maturity_date"`
	ValuationDate           string  `mapstructure:"valuation_date"`
	RecoveryRate            float64 `mapstructure:"recovery_rate"`
	IncludeAccruedPremium   bool    `mapstructure:"include_accrued_premium"`
	AdjustMaturityDate      bool    `mapstructure:"adjust_maturity_date"`
	IntegrationStepsPerYear int     `mapstructure:"integration_steps_per_year"`
	Calendar                string  `mapstructure:"calendar"`
	DayCount                string  `mapstructure:"day_count"`
	Sector                  string  `mapstructure:"sector"`
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory, if present, is loaded first.
func Load(path string) (*File, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	v.SetEnvPrefix("CDSLIB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &f, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", false)

	v.SetDefault("pricing.batch_workers", DefaultConfig.BatchWorkers)
	v.SetDefault("pricing.horizon_day_count", DefaultConfig.HorizonDayCount)
	v.SetDefault("pricing.par_spread_decimals", DefaultConfig.ParSpreadDecimals)
	v.SetDefault("pricing.default_day_count", DefaultConfig.DefaultDayCount)
	v.SetDefault("pricing.max_partitions", DefaultConfig.MaxPartitions)

	v.SetDefault("curves.discount.name", "discount")
	v.SetDefault("curves.discount.type", "flat")
	v.SetDefault("curves.survival.name", "survival")
	v.SetDefault("curves.survival.type", "flat")
}

// Validate checks the parts of the file that do not depend on pricing semantics;
// trade terms are validated by the pricer.
func (f *File) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[f.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	if f.Pricing.BatchWorkers < 1 {
		return fmt.Errorf("pricing.batch_workers must be at least 1")
	}
	if f.Pricing.ParSpreadDecimals < 0 {
		return fmt.Errorf("pricing.par_spread_decimals must not be negative")
	}
	if f.Pricing.MaxPartitions < 1 {
		return fmt.Errorf("pricing.max_partitions must be at least 1")
	}
	if err := utils.CheckDayCount(f.Pricing.HorizonDayCount); err != nil {
		return fmt.Errorf("pricing.horizon_day_count: %w", err)
	}
	if err := utils.CheckDayCount(f.Pricing.DefaultDayCount); err != nil {
		return fmt.Errorf("pricing.default_day_count: %w", err)
	}
	for key, c := range map[string]CurveConfig{"discount": f.Curves.Discount, "survival": f.Curves.Survival} {
		switch c.Type {
		case "flat":
		case "pillars":
			if len(c.Times) == 0 || len(c.Times) != len(c.Factors) {
				return fmt.Errorf("curves.%s: pillars need matching times and factors", key)
			}
		default:
			return fmt.Errorf("curves.%s.type must be one of: flat, pillars", key)
		}
	}
	if len(f.Trades) == 0 {
		return fmt.Errorf("trades must contain at least one trade")
	}
	return nil
}

// PricingParams merges the file overrides into a Config.
func (f *File) PricingParams() Config {
	return Config{
		BatchWorkers:      f.Pricing.BatchWorkers,
		HorizonDayCount:   f.Pricing.HorizonDayCount,
		ParSpreadDecimals: f.Pricing.ParSpreadDecimals,
		DefaultDayCount:   f.Pricing.DefaultDayCount,
		MaxPartitions:     f.Pricing.MaxPartitions,
	}
}
