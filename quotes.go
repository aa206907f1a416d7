package tradelog

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Latest quote lookup for open positions. Quotes are display plumbing for
// the positions report; the matcher never sees them.

const quoteEndpoint = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Quotable reports whether a symbol can be quoted. Multi-word option
// descriptors have no chart endpoint; they are skipped.
func Quotable(symbol string) bool {
	return symbol != "" && !strings.ContainsRune(symbol, ' ')
}

// LatestQuote fetches the latest market price for a symbol. Responses are
// cached on disk for the day.
func LatestQuote(symbol string) (Money, error) {
	if !Quotable(symbol) {
		return Money{}, fmt.Errorf("cannot quote %q: not a plain ticker", symbol)
	}

	addr := quoteEndpoint + url.PathEscape(symbol) + "?interval=1d&range=1d"
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error retrieving quote for %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing quote for %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok || val == 0 || math.IsNaN(val) {
		return Money{}, fmt.Errorf("error parsing quote for %q: %q not a price: %v", symbol, path, jval)
	}
	return USD(val), nil
}

// FetchQuotes fills the MarketPrice of each position that can be quoted.
// Failures are collected per symbol; positions keep a zero market price
// when their quote fails.
func FetchQuotes(positions []SymbolPosition) map[string]error {
	failures := make(map[string]error)
	for i := range positions {
		if !Quotable(positions[i].Symbol) {
			continue
		}
		price, err := LatestQuote(positions[i].Symbol)
		if err != nil {
			failures[positions[i].Symbol] = err
			continue
		}
		positions[i].MarketPrice = price
	}
	return failures
}
