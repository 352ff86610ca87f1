package risk

import (
	"fmt"

	"EquityLens/internal/model"
)

// OptimizeStopLoss proposes a volatility-scaled stop at
// entry -/+ multiplier*ATR, below the entry for a long and above it
// for a short.
func OptimizeStopLoss(entry, atr, multiplier float64, side model.PositionSide) (*model.StopLossProposal, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("unknown position side %q", side)
	}
	if atr < 0 {
		return nil, fmt.Errorf("negative ATR %.4f", atr)
	}

	distance := multiplier * atr
	stop := entry - distance
	if side == model.SideShort {
		stop = entry + distance
	}

	return &model.StopLossProposal{
		Side:       side,
		Entry:      entry,
		ATR:        atr,
		Multiplier: multiplier,
		Stop:       stop,
	}, nil
}
