package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/meenmo/cdslib/calendar"
	"github.com/meenmo/cdslib/cds"
	"github.com/meenmo/cdslib/config"
	"github.com/meenmo/cdslib/curve"
	"github.com/meenmo/cdslib/utils"
)

func buildCurves(cfg config.CurvesConfig) (curve.DiscountCurve, curve.SurvivalCurve, error) {
	d, err := buildCurve(cfg.Discount, func(r float64) curve.Curve { return curve.FlatRate{Rate: r} })
	if err != nil {
		return curve.DiscountCurve{}, curve.SurvivalCurve{}, fmt.Errorf("discount curve: %w", err)
	}
	s, err := buildCurve(cfg.Survival, func(h float64) curve.Curve { return curve.FlatHazard{Hazard: h} })
	if err != nil {
		return curve.DiscountCurve{}, curve.SurvivalCurve{}, fmt.Errorf("survival curve: %w", err)
	}
	return curve.NewDiscountCurve(cfg.Discount.Name, d), curve.NewSurvivalCurve(cfg.Survival.Name, s), nil
}

func buildCurve(c config.CurveConfig, flat func(float64) curve.Curve) (curve.Curve, error) {
	switch c.Type {
	case "flat":
		return flat(c.Rate), nil
	case "pillars":
		return curve.NewPillars(c.Times, c.Factors)
	}
	return nil, fmt.Errorf("unsupported curve type %q", c.Type)
}

func buildTerms(tc config.TradeConfig) (cds.ContractTerms, error) {
	direction, err := cds.ParseDirection(tc.Direction)
	if err != nil {
		return cds.ContractTerms{}, err
	}
	sector, err := cds.ParseSector(tc.Sector)
	if err != nil {
		return cds.ContractTerms{}, err
	}
	spread, err := decimal.NewFromString(strings.TrimSpace(tc.ParSpreadBP))
	if err != nil {
		return cds.ContractTerms{}, fmt.Errorf("invalid par_spread_bp %q: %w", tc.ParSpreadBP, err)
	}

	start, err := utils.ParseDate(tc.StartDate)
	if err != nil {
		return cds.ContractTerms{}, fmt.Errorf("start_date: %w", err)
	}
	maturity, err := utils.ParseDate(tc.MaturityDate)
	if err != nil {
		return cds.ContractTerms{}, fmt.Errorf("maturity_date: %w", err)
	}
	valuation := start
	if tc.ValuationDate != "" {
		if valuation, err = utils.ParseDate(tc.ValuationDate); err != nil {
			return cds.ContractTerms{}, fmt.Errorf("valuation_date: %w", err)
		}
	}

	cal := calendar.CalendarID(strings.ToUpper(strings.TrimSpace(tc.Calendar)))
	if cal == "" {
		cal = calendar.WeekendsOnly
	}

	return cds.ContractTerms{
		TradeID:                 tc.TradeID,
		Notional:                tc.Notional,
		ParSpreadBP:             spread,
		Direction:               direction,
		StartDate:               start,
		MaturityDate:            maturity,
		ValuationDate:           valuation,
		RecoveryRate:            tc.RecoveryRate,
		IncludeAccruedPremium:   tc.IncludeAccruedPremium,
		AdjustMaturityDate:      tc.AdjustMaturityDate,
		IntegrationStepsPerYear: tc.IntegrationStepsPerYear,
		Calendar:                cal,
		DayCount:                tc.DayCount,
		Sector:                  sector,
	}, nil
}
