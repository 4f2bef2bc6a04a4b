package fight

import (
	"context"
	"time"
)

// Result summarizes a finished headless match.
type Result struct {
	MatchID string
	Winner  FighterSnapshot
	HasWin  bool
	Reason  EndReason
	Ticks   uint64
	Elapsed time.Duration
}

// Run drives a running match headlessly until it ends, maxTicks is reached
// (0 means no limit), or ctx is cancelled. Hitting the limit or cancelling
// stops the match without a winner; cancellation also returns ctx.Err().
func Run(ctx context.Context, m *Match, clock Clock, maxTicks int) (Result, error) {
	if m.State() != StateRunning {
		return Result{}, ErrMatchNotRunning
	}

	for m.State() == StateRunning {
		if err := ctx.Err(); err != nil {
			//nolint:errcheck // match is running, Stop cannot fail here
			m.Stop()
			return result(m), err
		}
		if maxTicks > 0 && m.tick >= uint64(maxTicks) {
			//nolint:errcheck // match is running, Stop cannot fail here
			m.Stop()
			break
		}
		m.Tick(clock.Now())
	}

	return result(m), nil
}

func result(m *Match) Result {
	r := Result{
		MatchID: m.ID(),
		Reason:  m.Reason(),
		Ticks:   m.tick,
		Elapsed: m.elapsed,
	}
	r.Winner, r.HasWin = m.Winner()
	return r
}
