package format

import (
	"fmt"

	"animebot/pkg/anime"
)

const (
	MaxSynopsisLength  = 1000
	MaxRecommendations = 5

	ellipsis = "..."
)

const HelpText = "**Anime Bot Commands**\n" +
	"`!help` - Show this message\n" +
	"`!anime <name>` - Search for an anime by name\n" +
	"`!anime details <id>` - Show details for an anime by its MAL ID\n" +
	"`!anime recommendations <id>` - Show recommendations for an anime by its MAL ID\n" +
	"`!lain` - Show details for Serial Experiments Lain\n" +
	"`!lain recommendations` - Show recommendations for Serial Experiments Lain"

const (
	SearchUsage          = "Usage: `!anime <anime name>`"
	DetailsUsage         = "Usage: `!anime details <id>`"
	RecommendationsUsage = "Usage: `!anime recommendations <id>`"
)

func MissingSearchQuery() string {
	return "Please provide an anime name to search. " + SearchUsage
}

func MissingID(usage string) string {
	return "Please provide an anime ID. " + usage
}

func InvalidID(usage string) string {
	return "Invalid anime ID. Please provide a numeric ID. " + usage
}

func SearchAck(query string) string {
	return fmt.Sprintf("Searching for anime: '%s'...", query)
}

func DetailsAck(id int) string {
	return fmt.Sprintf("Fetching details for anime ID %d...", id)
}

func RecommendationsAck(id int) string {
	return fmt.Sprintf("Fetching recommendations for anime ID %d...", id)
}

func NoResults(query string) string {
	return fmt.Sprintf("No results found for '%s'.", query)
}

func NoRecommendations(id int) string {
	return fmt.Sprintf("No recommendations found for anime ID %d.", id)
}

// UpstreamError is the generic reply for any failed API call; action reads like
// "searching for anime".
func UpstreamError(action string) string {
	return fmt.Sprintf("An error occurred while %s. Please try again later.", action)
}

func FormatSearchResults(query string, results []anime.AnimeSummary) *Card {
	card := &Card{Title: fmt.Sprintf("Search results for '%s'", query)}
	for _, a := range results {
		card.Fields = append(card.Fields, Field{
			Name:  a.Title,
			Value: fmt.Sprintf("MAL ID: %d", a.ID),
		})
	}
	return card
}

func FormatDetails(d *anime.AnimeDetail) *Card {
	card := &Card{
		Title:  d.Title,
		URL:    d.URL,
		Footer: fmt.Sprintf("MAL ID: %d", d.ID),
	}
	if d.Synopsis != nil {
		card.Description = TruncateSynopsis(*d.Synopsis)
	}
	if d.CoverImageURL != nil {
		card.ImageURL = *d.CoverImageURL
	}

	for _, rule := range detailFields {
		value, ok := rule.value(d)
		if !ok {
			continue
		}
		card.Fields = append(card.Fields, Field{Name: rule.name, Value: value, Inline: rule.inline})
	}
	return card
}

// FormatRecommendations lists the first MaxRecommendations entries, numbered from 1, in input order.
func FormatRecommendations(sourceID int, entries []anime.RecommendationEntry) *Card {
	card := &Card{
		Title:  fmt.Sprintf("Recommendations for anime ID %d", sourceID),
		Footer: fmt.Sprintf("Based on MAL ID: %d", sourceID),
	}
	if len(entries) > MaxRecommendations {
		entries = entries[:MaxRecommendations]
	}
	for i, e := range entries {
		value := e.URL
		if value == "" {
			value = fmt.Sprintf("MAL ID: %d", e.ID)
		}
		card.Fields = append(card.Fields, Field{
			Name:  fmt.Sprintf("%d. %s", i+1, e.Title),
			Value: value,
		})
	}
	if len(entries) > 0 && entries[0].CoverImageURL != nil {
		card.ThumbnailURL = *entries[0].CoverImageURL
	}
	return card
}

// TruncateSynopsis cuts text longer than MaxSynopsisLength characters and appends an ellipsis.
func TruncateSynopsis(text string) string {
	r := []rune(text)
	if len(r) <= MaxSynopsisLength {
		return text
	}
	return string(r[:MaxSynopsisLength]) + ellipsis
}
