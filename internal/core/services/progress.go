package services

import "github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"

// progressCeiling is the highest percentage a poll loop reports before
// confirmed success. 100 means done, so the bar holds just under it.
const progressCeiling = 90

// progressMeter feeds cosmetic, monotonically increasing percentages
// to a driving.ProgressFunc. The percentage is a perceived-latency
// proxy with no relation to actual workflow progress.
type progressMeter struct {
	fn      driving.ProgressFunc
	percent int
}

func newProgressMeter(fn driving.ProgressFunc) *progressMeter {
	return &progressMeter{fn: fn}
}

// step advances the bar by a few points, capped below 100, and emits
// the caption.
func (p *progressMeter) step(caption string) {
	if p.fn == nil {
		return
	}
	if p.percent < progressCeiling {
		p.percent += 5
		if p.percent > progressCeiling {
			p.percent = progressCeiling
		}
	}
	p.fn(p.percent, caption)
}

// done reports completion. Only confirmed success reaches 100.
func (p *progressMeter) done(caption string) {
	if p.fn == nil {
		return
	}
	p.percent = 100
	p.fn(100, caption)
}
