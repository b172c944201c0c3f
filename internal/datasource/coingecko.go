package datasource

import (
	"encoding/json"
	"fmt"
	"net/http"

	"trendmint/internal/models"
)

const coingeckoTrendingURL = "https://api.coingecko.com/api/v3/search/trending"

// CoinGeckoSource reads the CoinGecko trending-search coins. The endpoint is
// keyless and already aggregated, so no caching games are needed.
type CoinGeckoSource struct {
	client *http.Client
}

func (s *CoinGeckoSource) Name() string  { return "coingecko" }
func (s *CoinGeckoSource) Enabled() bool { return true }

type trendingResponse struct {
	Coins []struct {
		Item struct {
			Name          string  `json:"name"`
			Symbol        string  `json:"symbol"`
			MarketCapRank int     `json:"market_cap_rank"`
			PriceBTC      float64 `json:"price_btc"`
		} `json:"item"`
	} `json:"coins"`
}

func (s *CoinGeckoSource) Fetch() (models.Feed, error) {
	body, err := fetchURL(s.client, coingeckoTrendingURL)
	if err != nil {
		return models.Feed{}, fmt.Errorf("coingecko fetch: %w", err)
	}

	var resp trendingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Feed{}, fmt.Errorf("coingecko parse: %w", err)
	}

	var coins []models.TrendingCoin
	for i, c := range resp.Coins {
		if i >= 10 {
			break
		}
		coins = append(coins, models.TrendingCoin{
			Name:          c.Item.Name,
			Symbol:        c.Item.Symbol,
			MarketCapRank: c.Item.MarketCapRank,
			PriceBTC:      c.Item.PriceBTC,
		})
	}

	if len(coins) == 0 {
		return models.Feed{}, fmt.Errorf("coingecko: empty trending list")
	}

	return models.Feed{Coins: coins}, nil
}
