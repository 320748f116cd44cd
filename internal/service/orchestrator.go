package service

import (
	"context"
	"time"

	"trust-engine/internal/core/domain"

	"github.com/rs/zerolog"
)

type analyzerResult struct {
	factor  domain.Factor
	score   int
	reasons []string
}

// orchestrator fans the applicable analyzers out concurrently, enforces
// a per-analyzer timeout and an overall deadline, and collects whatever
// completed. A timed-out analyzer contributes a fixed penalty instead of
// blocking the response.
type orchestrator struct {
	analyzers       []Analyzer
	analyzerTimeout time.Duration
	overallDeadline time.Duration
	penalty         int
	onTimeout       func(factor string)
	log             zerolog.Logger
}

// run executes every applicable analyzer and returns sub-scores keyed by
// factor plus per-factor reasons. On caller cancellation it returns the
// context error and no partial result.
func (o *orchestrator) run(ctx context.Context, req *domain.CheckRequest) (domain.RiskFactors, map[domain.Factor][]string, error) {
	overallCtx, cancel := context.WithTimeout(ctx, o.overallDeadline)
	defer cancel()

	applicable := make([]Analyzer, 0, len(o.analyzers))
	for _, a := range o.analyzers {
		if a.Applies(req) {
			applicable = append(applicable, a)
		}
	}

	// Buffered so a result arriving after the deadline never leaks the
	// sending goroutine.
	results := make(chan analyzerResult, len(applicable))
	for _, a := range applicable {
		go func(a Analyzer) {
			actx, acancel := context.WithTimeout(overallCtx, o.analyzerTimeout)
			defer acancel()

			done := make(chan analyzerResult, 1)
			go func() {
				score, reasons := a.Analyze(actx, req)
				done <- analyzerResult{factor: a.Factor(), score: score, reasons: reasons}
			}()

			select {
			case r := <-done:
				results <- r
			case <-actx.Done():
				o.log.Warn().Str("factor", string(a.Factor())).Msg("analyzer timed out")
				if o.onTimeout != nil {
					o.onTimeout(string(a.Factor()))
				}
				results <- analyzerResult{
					factor:  a.Factor(),
					score:   o.penalty,
					reasons: []string{timeoutReason(a.Factor())},
				}
			}
		}(a)
	}

	var factors domain.RiskFactors
	reasons := make(map[domain.Factor][]string, len(applicable))
	received := make(map[domain.Factor]bool, len(applicable))

	for range applicable {
		select {
		case r := <-results:
			factors.Set(r.factor, r.score)
			reasons[r.factor] = r.reasons
			received[r.factor] = true
		case <-overallCtx.Done():
			if err := ctx.Err(); err != nil {
				// The caller went away; drop everything.
				return domain.RiskFactors{}, nil, err
			}
			// Overall deadline hit: degrade every still-pending factor.
			for _, a := range applicable {
				if !received[a.Factor()] {
					o.log.Warn().Str("factor", string(a.Factor())).Msg("analyzer missed overall deadline")
					if o.onTimeout != nil {
						o.onTimeout(string(a.Factor()))
					}
					factors.Set(a.Factor(), o.penalty)
					reasons[a.Factor()] = []string{timeoutReason(a.Factor())}
				}
			}
			return factors, reasons, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.RiskFactors{}, nil, err
	}
	return factors, reasons, nil
}
