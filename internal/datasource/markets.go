package datasource

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"trendmint/internal/logger"
	"trendmint/internal/models"

	"github.com/piquette/finance-go/future"
)

const coinbaseRatesURL = "https://api.coinbase.com/v2/exchange-rates?currency=USD"

var spotSymbols = []struct {
	Label  string
	Symbol string
}{
	{"Bitcoin", "BTC"},
	{"Ethereum", "ETH"},
	{"Solana", "SOL"},
}

var futureSymbols = []struct {
	Label  string
	Symbol string
}{
	{"Crude Oil", "CL=F"},
	{"Gold", "GC=F"},
	{"Silver", "SI=F"},
	{"Natural Gas", "NG=F"},
}

// MarketsSource assembles a small market snapshot: crypto spot prices from
// the Coinbase exchange-rates endpoint plus a handful of futures quotes.
type MarketsSource struct {
	client *http.Client
}

func (s *MarketsSource) Name() string  { return "markets" }
func (s *MarketsSource) Enabled() bool { return true }

type exchangeRates struct {
	Data struct {
		Rates map[string]string `json:"rates"`
	} `json:"data"`
}

func (s *MarketsSource) Fetch() (models.Feed, error) {
	var quotes []models.MarketQuote

	body, err := fetchURL(s.client, coinbaseRatesURL)
	if err != nil {
		logger.Warn("markets: exchange rates failed", map[string]interface{}{"error": err.Error()})
	} else {
		var rates exchangeRates
		if err := json.Unmarshal(body, &rates); err == nil {
			for _, sym := range spotSymbols {
				raw, ok := rates.Data.Rates[sym.Symbol]
				if !ok {
					continue
				}
				rate, err := strconv.ParseFloat(raw, 64)
				if err != nil || rate <= 0 {
					continue
				}
				// Rates are units per USD; price is the inverse.
				quotes = append(quotes, models.MarketQuote{
					Label: sym.Label, Symbol: sym.Symbol, Price: 1 / rate,
				})
			}
		}
	}

	for _, sym := range futureSymbols {
		if price, ok := fetchFuture(sym.Symbol); ok {
			quotes = append(quotes, models.MarketQuote{
				Label: sym.Label, Symbol: sym.Symbol, Price: price,
			})
		}
	}

	if len(quotes) == 0 {
		return models.Feed{}, fmt.Errorf("markets: no quotes available")
	}

	return models.Feed{Quotes: quotes}, nil
}

// fetchFuture wraps the quote lookup in a recover; the quote library panics
// on some malformed responses.
func fetchFuture(symbol string) (price float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("markets: future quote panic", map[string]interface{}{
				"symbol": symbol, "error": fmt.Sprintf("%v", r),
			})
			ok = false
		}
	}()

	f, err := future.Get(symbol)
	if err != nil || f == nil {
		return 0, false
	}
	if f.Quote.RegularMarketPrice <= 0 {
		return 0, false
	}
	return f.Quote.RegularMarketPrice, true
}
