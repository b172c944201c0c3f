package datasource

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"trendmint/internal/logger"
	"trendmint/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// NitterSource reads trending topics from the explore page of public Nitter
// mirrors. Instances come and go, so each is tried in order until one
// answers with usable trends.
type NitterSource struct {
	client    *http.Client
	cache     *HTTPCache
	instances []string
}

func (s *NitterSource) Name() string  { return "twitter" }
func (s *NitterSource) Enabled() bool { return true }

func (s *NitterSource) Fetch() (models.Feed, error) {
	for _, instance := range s.instances {
		url := strings.TrimRight(instance, "/") + "/explore"
		body, err := s.cache.Fetch(url, s.client)
		if err != nil {
			logger.Warn("twitter: nitter instance failed", map[string]interface{}{
				"instance": instance, "error": err.Error(),
			})
			continue
		}

		trends := parseNitterTrends(body)
		if len(trends) == 0 {
			continue
		}

		logger.Info("twitter: trends via nitter", map[string]interface{}{
			"instance": instance, "count": len(trends),
		})
		return models.Feed{Trends: firstN(trends, 10)}, nil
	}

	return models.Feed{}, fmt.Errorf("twitter: all %d nitter instances failed", len(s.instances))
}

func parseNitterTrends(body []byte) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var trends []string
	doc.Find("span.trend-name").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			trends = append(trends, t)
		}
	})
	return trends
}
