// Package valuation computes a portfolio-weighted estimate of a fund's
// intraday valuation change from its disclosed holdings.
package valuation

import (
	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/models"
)

// NoValidDataMessage is returned when no holding carries usable price change
// data, so no estimate can be formed.
const NoValidDataMessage = "unable to estimate: no valid price change data"

// Estimate computes the weighted average price change across holdings.
// Holdings whose change is the unavailable sentinel, or fails to parse, are
// excluded from both the numerator and the denominator; their weight is not
// redistributed. Pure and order-insensitive.
func Estimate(holdings []models.HoldingRecord) string {
	var totalWeight, weightedSum float64

	for _, holding := range holdings {
		if holding.ChangePercent == models.ChangeUnavailable {
			continue
		}
		change, ok := common.ParseSignedPercent(holding.ChangePercent)
		if !ok {
			continue
		}
		totalWeight += holding.Proportion
		weightedSum += holding.Proportion * change
	}

	if totalWeight == 0 {
		return NoValidDataMessage
	}

	return common.FormatSignedPercent(weightedSum / totalWeight)
}
