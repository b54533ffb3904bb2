package config

// Config holds pricing parameters that are not part of a trade's terms.
type Config struct {
	// BatchWorkers bounds the number of trades valued concurrently by PriceBatch.
	BatchWorkers int

	// HorizonDayCount converts valuation date -> maturity date into the
	// contingent-leg integration horizon in years.
	HorizonDayCount string

	// ParSpreadDecimals is the number of decimals kept on solved par spreads (bp).
	ParSpreadDecimals int32

	// DefaultDayCount is the accrual day count when a trade leaves it empty.
	DefaultDayCount string

	// MaxPartitions is the largest contingent-leg integration grid a trade may request.
	MaxPartitions int
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	BatchWorkers:      8,
	HorizonDayCount:   "ACT/365F",
	ParSpreadDecimals: 6,
	DefaultDayCount:   "ACT/360",
	MaxPartitions:     1_000_000,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
// Pricers capture the configuration when they are constructed.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}
