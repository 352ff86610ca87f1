package risk

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"EquityLens/internal/model"
)

var validate = validator.New()

// InvalidStopLossError reports a sizing request whose stop distance is
// zero: entry equal to stop makes the per-share risk a zero
// denominator.
type InvalidStopLossError struct {
	Entry float64
	Stop  float64
}

func (e *InvalidStopLossError) Error() string {
	return fmt.Sprintf("invalid stop loss: entry %.4f equals stop %.4f, per-share risk is zero", e.Entry, e.Stop)
}

// PositionSize computes whole-share sizing from the account's risk
// budget: shares = floor((account * risk% / 100) / |entry - stop|).
// MaxLoss reports the realized risk after floor rounding, which is
// never more than the requested budget.
func PositionSize(req model.RiskRequest) (*model.RiskProfile, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid risk request: %w", err)
	}
	if req.EntryPrice == req.StopLoss {
		return nil, &InvalidStopLossError{Entry: req.EntryPrice, Stop: req.StopLoss}
	}

	riskBudget := req.AccountSize * req.RiskPercentage / 100
	riskPerShare := math.Abs(req.EntryPrice - req.StopLoss)
	shares := int64(math.Floor(riskBudget / riskPerShare))

	return &model.RiskProfile{
		AccountSize:    req.AccountSize,
		RiskPercentage: req.RiskPercentage,
		EntryPrice:     req.EntryPrice,
		StopLoss:       req.StopLoss,
		Side:           req.Side,
		PositionSize:   shares,
		PositionValue:  float64(shares) * req.EntryPrice,
		RiskPerShare:   riskPerShare,
		MaxLoss:        float64(shares) * riskPerShare,
	}, nil
}
