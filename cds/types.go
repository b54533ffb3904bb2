package cds

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meenmo/cdslib/calendar"
)

var (
	// ErrInvalidTerms is wrapped by every contract-terms validation failure.
	ErrInvalidTerms = errors.New("invalid contract terms")
	// ErrNoPartitions is returned when the integration grid rounds to zero partitions.
	ErrNoPartitions = errors.New("integration grid has no partitions")
	// ErrZeroAnnuity is returned when a par spread is requested for a trade with no premium annuity.
	ErrZeroAnnuity = errors.New("risky annuity is zero")
)

// Direction is the protection side of the trade.
type Direction int

const (
	// BuyProtection pays the premium leg and receives the contingent leg.
	BuyProtection Direction = iota + 1
	// SellProtection receives the premium leg and pays the contingent leg.
	SellProtection
)

func (d Direction) String() string {
	switch d {
	case BuyProtection:
		return "BuyProtection"
	case SellProtection:
		return "SellProtection"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "buy", "sell", "BuyProtection" and "SellProtection",
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "buyprotection":
		return BuyProtection, nil
	case "sell", "sellprotection":
		return SellProtection, nil
	}
	return 0, fmt.Errorf("%w: unrecognized direction %q", ErrInvalidTerms, s)
}

// sign converts a buyer-view PV into the trade's view.
func (d Direction) sign() float64 {
	if d == SellProtection {
		return -1
	}
	return 1
}

// ContractTerms are the economic terms of a single-name CDS.
type ContractTerms struct {
	TradeID string

	Notional float64
	// ParSpreadBP is the running premium in basis points.
	ParSpreadBP decimal.Decimal
	Direction   Direction

	StartDate     time.Time
	MaturityDate  time.Time
	ValuationDate time.Time

	RecoveryRate float64

	IncludeAccruedPremium bool
	AdjustMaturityDate    bool

	// IntegrationStepsPerYear sets the contingent-leg partition density.
	IntegrationStepsPerYear int

	// Calendar and DayCount are used only when the pricer builds the schedule itself.
	Calendar calendar.CalendarID
	DayCount string

	Sector Sector
}

var bpDivisor = decimal.NewFromInt(10000)

// SpreadRate returns the par spread as a decimal rate (bp / 10,000).
func (c ContractTerms) SpreadRate() float64 {
	return c.ParSpreadBP.Div(bpDivisor).InexactFloat64()
}

// Validate checks the terms before any curve is sampled.
func (c ContractTerms) Validate() error {
	switch {
	case math.IsNaN(c.Notional) || c.Notional <= 0:
		return fmt.Errorf("%w: notional must be positive (got %v)", ErrInvalidTerms, c.Notional)
	case c.ParSpreadBP.IsNegative():
		return fmt.Errorf("%w: par spread must not be negative (got %s bp)", ErrInvalidTerms, c.ParSpreadBP)
	case c.Direction != BuyProtection && c.Direction != SellProtection:
		return fmt.Errorf("%w: unrecognized direction %s", ErrInvalidTerms, c.Direction)
	case math.IsNaN(c.RecoveryRate) || c.RecoveryRate < 0 || c.RecoveryRate >= 1:
		return fmt.Errorf("%w: recovery rate must be in [0,1) (got %v)", ErrInvalidTerms, c.RecoveryRate)
	case c.IntegrationStepsPerYear <= 0:
		return fmt.Errorf("%w: integration steps per year must be positive (got %d)", ErrInvalidTerms, c.IntegrationStepsPerYear)
	case c.ValuationDate.IsZero() || c.MaturityDate.IsZero():
		return fmt.Errorf("%w: valuation and maturity dates are required", ErrInvalidTerms)
	case !c.MaturityDate.After(c.ValuationDate):
		return fmt.Errorf("%w: maturity %s is not after valuation %s", ErrInvalidTerms,
			c.MaturityDate.Format("2006-01-02"), c.ValuationDate.Format("2006-01-02"))
	}
	return nil
}
