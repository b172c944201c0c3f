package datasource

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"trendmint/internal/models"
)

const youtubeTrendingURL = "https://www.youtube.com/feed/trending"

// titleRunRe matches video titles inside the ytInitialData JSON blob
// embedded in the trending page. Brittle by construction; when the page
// layout drifts this source just goes quiet.
var titleRunRe = regexp.MustCompile(`"title":\{"runs":\[\{"text":"([^"]+)"\}\]`)

// YouTubeSource scrapes titles off the public YouTube trending page.
type YouTubeSource struct {
	client *http.Client
	cache  *HTTPCache
}

func (s *YouTubeSource) Name() string  { return "youtube" }
func (s *YouTubeSource) Enabled() bool { return true }

func (s *YouTubeSource) Fetch() (models.Feed, error) {
	body, err := s.cache.Fetch(youtubeTrendingURL, s.client)
	if err != nil {
		return models.Feed{}, fmt.Errorf("youtube fetch: %w", err)
	}

	titles := parseYouTubeTitles(body)
	if len(titles) == 0 {
		return models.Feed{}, fmt.Errorf("youtube: no titles extracted")
	}

	return models.Feed{Trends: titles}, nil
}

func parseYouTubeTitles(body []byte) []string {
	matches := titleRunRe.FindAllStringSubmatch(string(body), -1)

	var titles []string
	for _, m := range matches {
		title := unescapeJSON(m[1])
		// Short matches are UI chrome, not video titles.
		if utf8.RuneCountInString(title) <= 10 || strings.HasPrefix(title, "YouTube") {
			continue
		}
		titles = append(titles, title)
		if len(titles) == 15 {
			break
		}
	}
	return titles
}

// unescapeJSON resolves \uXXXX and friends in a raw JSON string fragment.
func unescapeJSON(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	unquoted, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return unquoted
}
