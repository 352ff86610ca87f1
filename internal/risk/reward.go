package risk

import (
	"fmt"

	"EquityLens/internal/model"
)

// RiskReward computes the reward-to-risk ratio for an explicit
// position side; direction is never inferred from price ordering.
// For a long, reward is target-entry and risk entry-stop; a short is
// the mirror image. A stop on the wrong side of the entry is an
// invalid request.
func RiskReward(entry, stop, target float64, side model.PositionSide) (float64, error) {
	if !side.Valid() {
		return 0, fmt.Errorf("unknown position side %q", side)
	}

	var reward, riskAmt float64
	switch side {
	case model.SideLong:
		reward = target - entry
		riskAmt = entry - stop
	case model.SideShort:
		reward = entry - target
		riskAmt = stop - entry
	}

	if riskAmt <= 0 {
		return 0, &InvalidStopLossError{Entry: entry, Stop: stop}
	}
	return reward / riskAmt, nil
}
