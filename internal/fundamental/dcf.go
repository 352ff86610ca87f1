package fundamental

import (
	"fmt"
	"math"

	"EquityLens/internal/series"
)

// InvalidAssumptionError reports DCF inputs that make the valuation
// mathematically meaningless, such as a discount rate at or below the
// terminal growth rate.
type InvalidAssumptionError struct {
	Reason string
}

func (e *InvalidAssumptionError) Error() string {
	return "invalid valuation assumption: " + e.Reason
}

// Valuation component names.
const (
	ValEnterpriseValue = "enterprise_value"
	ValEquityValue     = "equity_value"
	ValPricePerShare   = "price_per_share"
	ValPVForecast      = "pv_forecast_cash_flows"
	ValPVTerminal      = "pv_terminal_value"
)

// DCFValuation discounts the projected free-cash-flow sequence at the
// supplied rate and adds a Gordon-growth terminal value:
// FCF_last*(1+g)/(r-g), discounted to present. The price per share is
// undefined when shares outstanding is zero.
func DCFValuation(cashFlows []float64, discountRate, terminalGrowth, sharesOutstanding float64) (map[string]float64, error) {
	if len(cashFlows) == 0 {
		return nil, series.ErrInsufficientData("DCF", 1, 0)
	}
	if discountRate <= terminalGrowth {
		return nil, &InvalidAssumptionError{
			Reason: fmt.Sprintf("discount rate %.4f must exceed terminal growth %.4f", discountRate, terminalGrowth),
		}
	}

	pvForecast := 0.0
	for i, cf := range cashFlows {
		pvForecast += cf / math.Pow(1+discountRate, float64(i+1))
	}

	terminal := cashFlows[len(cashFlows)-1] * (1 + terminalGrowth) / (discountRate - terminalGrowth)
	pvTerminal := terminal / math.Pow(1+discountRate, float64(len(cashFlows)))

	enterprise := pvForecast + pvTerminal
	return map[string]float64{
		ValEnterpriseValue: enterprise,
		ValEquityValue:     enterprise,
		ValPricePerShare:   safeDiv(enterprise, sharesOutstanding),
		ValPVForecast:      pvForecast,
		ValPVTerminal:      pvTerminal,
	}, nil
}
