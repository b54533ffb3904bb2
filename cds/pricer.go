// Package cds values single-name credit default swaps.
//
// The PV is computed from the buyer's view, paying the premium leg and receiving
// the contingent leg, and negated for SellProtection trades.
package cds

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/meenmo/cdslib/calendar"
	"github.com/meenmo/cdslib/config"
	"github.com/meenmo/cdslib/curve"
	"github.com/meenmo/cdslib/schedule"
	"github.com/meenmo/cdslib/utils"
)

// Result is the full valuation of one trade.
type Result struct {
	TradeID       string
	Direction     Direction
	PremiumLeg    PremiumLegPV
	ContingentLeg float64
	// PV is contingent - premium for buyers, premium - contingent for sellers.
	PV float64
	// RPV01 is the risky annuity per unit notional and unit spread.
	RPV01 float64
	// ParSpreadBP equates the two legs. Zero when the trade has no premium annuity.
	ParSpreadBP decimal.Decimal
}

// Pricer orchestrates the premium and contingent legs.
//
// A Pricer holds no per-valuation state and is safe for concurrent use as long as
// the curves it is given are safe for concurrent reads.
type Pricer struct {
	cfg        config.Config
	log        zerolog.Logger
	premium    PremiumLegValuer
	contingent ContingentLegValuer
}

// NewPricer creates a pricer using the active package configuration.
func NewPricer(log zerolog.Logger) *Pricer {
	return NewPricerWithConfig(config.GetConfig(), log)
}

// NewPricerWithConfig creates a pricer with an explicit configuration.
func NewPricerWithConfig(cfg config.Config, log zerolog.Logger) *Pricer {
	return &Pricer{
		cfg:        cfg,
		log:        log.With().Str("component", "cds_pricer").Logger(),
		contingent: ContingentLegValuer{MaxPartitions: cfg.MaxPartitions},
	}
}

// Price returns the signed PV of the trade.
func (p *Pricer) Price(terms ContractTerms, sched schedule.AccrualSchedule, disc curve.DiscountCurve, surv curve.SurvivalCurve) (float64, error) {
	r, err := p.Value(terms, sched, disc, surv)
	if err != nil {
		return 0, err
	}
	return r.PV, nil
}

// Value prices the trade against an externally built accrual schedule.
//
// The contingent leg integrates from the valuation date to the contract maturity.
func (p *Pricer) Value(terms ContractTerms, sched schedule.AccrualSchedule, disc curve.DiscountCurve, surv curve.SurvivalCurve) (Result, error) {
	horizon := utils.YearFraction(terms.ValuationDate, terms.MaturityDate, p.cfg.HorizonDayCount)
	if err := p.validate(terms, sched, disc, surv, horizon); err != nil {
		return Result{}, err
	}
	return p.value(terms, sched, disc, surv, horizon)
}

// ParSpread returns the spread in bp at which the trade has zero PV.
func (p *Pricer) ParSpread(terms ContractTerms, sched schedule.AccrualSchedule, disc curve.DiscountCurve, surv curve.SurvivalCurve) (decimal.Decimal, error) {
	r, err := p.Value(terms, sched, disc, surv)
	if err != nil {
		return decimal.Zero, err
	}
	if r.RPV01 == 0 {
		return decimal.Zero, fmt.Errorf("ParSpread: %w", ErrZeroAnnuity)
	}
	return r.ParSpreadBP, nil
}

// PriceContract generates the premium schedule from the terms' dates and
// calendar, then values the trade. The contingent leg runs to the generated
// (possibly adjusted) maturity.
func (p *Pricer) PriceContract(terms ContractTerms, disc curve.DiscountCurve, surv curve.SurvivalCurve) (Result, error) {
	if err := terms.Validate(); err != nil {
		return Result{}, err
	}
	cal, err := calendar.Lookup(terms.Calendar)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidTerms, err)
	}

	b, err := schedule.NewGenerator(cal, p.log).Generate(terms.StartDate, terms.MaturityDate, terms.AdjustMaturityDate)
	if err != nil {
		return Result{}, err
	}

	dayCount := terms.DayCount
	if dayCount == "" {
		dayCount = p.cfg.DefaultDayCount
	}
	sched, err := schedule.BuildAccrualSchedule(b.Dates().Collect(), terms.ValuationDate, dayCount)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidTerms, err)
	}

	horizon := utils.YearFraction(terms.ValuationDate, b.Maturity, p.cfg.HorizonDayCount)
	if err := p.validate(terms, sched, disc, surv, horizon); err != nil {
		return Result{}, err
	}
	return p.value(terms, sched, disc, surv, horizon)
}

// validate runs every check that does not need a curve sample, including the
// integration grid size.
func (p *Pricer) validate(terms ContractTerms, sched schedule.AccrualSchedule, disc curve.DiscountCurve, surv curve.SurvivalCurve, horizon float64) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	if _, err := p.contingent.Partitions(ContingentLegInput{TMaturity: horizon, StepsPerYear: terms.IntegrationStepsPerYear}); err != nil {
		return err
	}
	if len(sched) == 0 {
		return fmt.Errorf("%w: accrual schedule is empty", ErrInvalidTerms)
	}
	if err := sched.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTerms, err)
	}
	if err := disc.Validate(); err != nil {
		return err
	}
	return surv.Validate()
}

func (p *Pricer) value(terms ContractTerms, sched schedule.AccrualSchedule, disc curve.DiscountCurve, surv curve.SurvivalCurve, horizon float64) (Result, error) {
	spread := terms.SpreadRate()

	premium, err := p.premium.Value(sched, terms.Notional, spread, disc, surv, terms.IncludeAccruedPremium)
	if err != nil {
		return Result{}, fmt.Errorf("premium leg: %w", err)
	}

	contingent, err := p.contingent.Value(ContingentLegInput{
		Notional:     terms.Notional,
		RecoveryRate: terms.RecoveryRate,
		TStart:       0,
		TMaturity:    horizon,
		StepsPerYear: terms.IntegrationStepsPerYear,
		Discount:     disc,
		Survival:     surv,
	})
	if err != nil {
		return Result{}, fmt.Errorf("contingent leg: %w", err)
	}

	r := Result{
		TradeID:       terms.TradeID,
		Direction:     terms.Direction,
		PremiumLeg:    premium,
		ContingentLeg: contingent,
		PV:            terms.Direction.sign() * (contingent - premium.Total),
		RPV01:         premium.Annuity,
	}
	if premium.Annuity > 0 {
		bp := contingent / (terms.Notional * premium.Annuity) * 10000
		r.ParSpreadBP = decimal.NewFromFloat(bp).Round(p.cfg.ParSpreadDecimals)
	}

	p.log.Debug().
		Str("trade_id", terms.TradeID).
		Stringer("direction", terms.Direction).
		Float64("premium_leg", premium.Total).
		Float64("contingent_leg", contingent).
		Float64("pv", r.PV).
		Msg("trade valued")
	return r, nil
}
