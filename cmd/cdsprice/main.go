package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/cdslib/cds"
	"github.com/meenmo/cdslib/config"
	"github.com/meenmo/cdslib/logger"
	"github.com/meenmo/cdslib/utils"
)

type tradeOutput struct {
	TradeID          string  `json:"trade_id"`
	Direction        string  `json:"direction"`
	PremiumLegPV     float64 `json:"premium_leg_pv"`
	AccruedPremiumPV float64 `json:"accrued_premium_pv"`
	ContingentLegPV  float64 `json:"contingent_leg_pv"`
	PV               float64 `json:"pv"`
	RPV01            float64 `json:"rpv01"`
	ParSpreadBP      string  `json:"par_spread_bp"`
}

type batchOutput struct {
	Trades []tradeOutput `json:"trades,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cdsprice", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML/JSON/TOML config path with curves and trades")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *help {
		fmt.Fprintln(stderr, "Usage: cdsprice -config <path>")
		fmt.Fprintln(stderr, "Value single-name CDS trades against a shared discount/survival curve snapshot.")
		return 0
	}
	path := strings.TrimSpace(*configPath)
	if path == "" {
		fmt.Fprintln(stderr, "Usage: cdsprice -config <path>")
		return 2
	}

	file, err := config.Load(path)
	if err != nil {
		return writeError(stdout, err)
	}
	if err := file.Validate(); err != nil {
		return writeError(stdout, err)
	}

	log := logger.NewWithWriter(logger.Config{Level: file.Logging.Level, Pretty: file.Logging.Pretty}, stderr)

	disc, surv, err := buildCurves(file.Curves)
	if err != nil {
		return writeError(stdout, err)
	}

	trades := make([]cds.ContractTerms, 0, len(file.Trades))
	for i, tc := range file.Trades {
		terms, err := buildTerms(tc)
		if err != nil {
			return writeError(stdout, fmt.Errorf("trades[%d]: %w", i, err))
		}
		trades = append(trades, terms)
	}

	pricer := cds.NewPricerWithConfig(file.PricingParams(), log)
	results, err := pricer.PriceBatch(context.Background(), trades, disc, surv)
	if err != nil {
		log.Error().Err(err).Msg("valuation failed")
		return writeError(stdout, err)
	}

	out := batchOutput{Trades: make([]tradeOutput, 0, len(results))}
	for _, r := range results {
		out.Trades = append(out.Trades, tradeOutput{
			TradeID:          r.TradeID,
			Direction:        r.Direction.String(),
			PremiumLegPV:     utils.RoundTo(r.PremiumLeg.Total, 6),
			AccruedPremiumPV: utils.RoundTo(r.PremiumLeg.Accrued, 6),
			ContingentLegPV:  utils.RoundTo(r.ContingentLeg, 6),
			PV:               utils.RoundTo(r.PV, 6),
			RPV01:            utils.RoundTo(r.RPV01, 10),
			ParSpreadBP:      r.ParSpreadBP.String(),
		})
	}
	b, _ := json.Marshal(out)
	fmt.Fprintln(stdout, string(b))
	return 0
}

func writeError(w io.Writer, err error) int {
	b, _ := json.Marshal(batchOutput{Error: err.Error()})
	fmt.Fprintln(w, string(b))
	return 1
}
