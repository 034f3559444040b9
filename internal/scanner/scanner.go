package scanner

import (
	"math"
	"sort"

	"github.com/suwandre/fundity/internal/models"
)

// FindOpportunities enumerates every unordered pair of exchanges quoting
// symbol and returns those whose absolute funding spread meets minSpread
// (percentage units, inclusive), sorted by descending spread.
//
// Exchanges are visited in lexicographic order, so repeated calls over the
// same snapshot produce identical output, ties included. The lower-rate side
// is long; on an exact rate tie the first exchange of the pair is long.
func FindOpportunities(snap *models.Snapshot, symbol string, minSpread float64) []models.ArbitrageOpportunity {
	// Collect the scaled rate from every exchange quoting the symbol.
	rates := make(map[string]int)
	for exchange, symbols := range snap.FundingRates {
		if rate, ok := symbols[symbol]; ok {
			rates[exchange] = rate
		}
	}

	// Nothing to pair up; not an error.
	if len(rates) < 2 {
		return nil
	}

	exchanges := make([]string, 0, len(rates))
	for exchange := range rates {
		exchanges = append(exchanges, exchange)
	}
	sort.Strings(exchanges)

	var opportunities []models.ArbitrageOpportunity

	for i, exchange1 := range exchanges {
		for _, exchange2 := range exchanges[i+1:] {
			rate1 := rates[exchange1]
			rate2 := rates[exchange2]
			spread := math.Abs(float64(rate1-rate2)) / 10000.0

			if spread < minSpread {
				continue
			}

			long, short := exchange1, exchange2
			if rate1 > rate2 {
				long, short = exchange2, exchange1
			}

			opportunities = append(opportunities, models.ArbitrageOpportunity{
				Symbol:        symbol,
				Exchange1:     exchange1,
				Rate1:         float64(rate1) / 10000.0,
				Exchange2:     exchange2,
				Rate2:         float64(rate2) / 10000.0,
				Spread:        spread,
				LongExchange:  long,
				ShortExchange: short,
			})
		}
	}

	// Stable keeps pair discovery order among equal spreads.
	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Spread > opportunities[j].Spread
	})

	return opportunities
}
