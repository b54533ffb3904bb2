package cds

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/meenmo/cdslib/curve"
)

// PriceBatch values many trades against one read-only curve snapshot.
//
// Trades run concurrently, bounded by the configured BatchWorkers. Trades without
// a TradeID are assigned one. The batch fails as a whole on the first error or on
// context cancellation; results are in input order.
func (p *Pricer) PriceBatch(ctx context.Context, trades []ContractTerms, disc curve.DiscountCurve, surv curve.SurvivalCurve) ([]Result, error) {
	results := make([]Result, len(trades))

	workers := p.cfg.BatchWorkers
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range trades {
		terms := trades[i]
		if terms.TradeID == "" {
			terms.TradeID = uuid.NewString()
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := p.PriceContract(terms, disc, surv)
			if err != nil {
				return fmt.Errorf("PriceBatch: trade %s: %w", terms.TradeID, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	p.log.Info().Int("trades", len(trades)).Msg("batch valued")
	return results, nil
}
