package fares

import "strings"

// FormatResult renders a fare result as a single display line
func FormatResult(res FareResult, currencySymbol string) string {
	switch res.Outcome {
	case OutcomePriced:
		return currencySymbol + res.Price
	case OutcomeAmbiguous:
		priced := make([]string, 0, len(res.Prices))
		for _, p := range res.Prices {
			priced = append(priced, currencySymbol+p)
		}
		return "Multiple fares: " + strings.Join(priced, ", ")
	case OutcomeNeedsStages:
		return "Multiple fares found - select specific stage(s) to resolve."
	case OutcomeNoMatchingStages:
		return "No matching stages."
	case OutcomeNoFareFound:
		return "No fare found."
	case OutcomeRouteNotFound:
		return "Route not found."
	case OutcomeIncomplete:
		return "Select a fare type, start and destination."
	}
	return "No fare found."
}
