package format

import (
	"fmt"
	"strings"

	"animebot/pkg/anime"
)

const (
	notAvailable       = "N/A"
	maxAlternateTitles = 3
	youtubeWatchURL    = "https://www.youtube.com/watch?v="
)

// fieldRule renders one detail field. ok=false drops the field from the card.
type fieldRule struct {
	name   string
	inline bool
	value  func(d *anime.AnimeDetail) (value string, ok bool)
}

// detailFields is the display table for AnimeDetail, in card order.
// Booleans render N/A when absent; other optional values are omitted.
var detailFields = []fieldRule{
	{name: "English Title", value: func(d *anime.AnimeDetail) (string, bool) { return omitString(d.TitleEnglish) }},
	{name: "Japanese Title", value: func(d *anime.AnimeDetail) (string, bool) { return omitString(d.TitleJapanese) }},
	{name: "Type", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitString(d.Kind) }},
	{name: "Source", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitString(d.Source) }},
	{name: "Episodes", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitInt(d.EpisodeCount, "%d") }},
	{name: "Status", inline: true, value: func(d *anime.AnimeDetail) (string, bool) {
		if d.Status == "" {
			return notAvailable, true
		}
		return d.Status, true
	}},
	{name: "Airing", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return naBool(d.Airing) }},
	{name: "Approved", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return naBool(d.Approved) }},
	{name: "Aired", value: func(d *anime.AnimeDetail) (string, bool) { return airedValue(d.Aired) }},
	{name: "Duration", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitString(d.Duration) }},
	{name: "Rating", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitString(d.Rating) }},
	{name: "Score", inline: true, value: func(d *anime.AnimeDetail) (string, bool) {
		if d.Score == nil {
			return "", false
		}
		return fmt.Sprintf("%.2f", *d.Score), true
	}},
	{name: "Scored By", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitInt(d.ScoredBy, "%d") }},
	{name: "Rank", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitInt(d.Rank, "#%d") }},
	{name: "Popularity", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitInt(d.Popularity, "#%d") }},
	{name: "Members", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitInt(d.Members, "%d") }},
	{name: "Favorites", inline: true, value: func(d *anime.AnimeDetail) (string, bool) { return omitInt(d.Favorites, "%d") }},
	{name: "Synonyms", value: func(d *anime.AnimeDetail) (string, bool) { return joinList(d.Synonyms, 0) }},
	{name: "Alternate Titles", value: func(d *anime.AnimeDetail) (string, bool) { return joinList(d.AlternateTitles, maxAlternateTitles) }},
	{name: "Trailer", value: func(d *anime.AnimeDetail) (string, bool) {
		id, ok := omitString(d.TrailerID)
		if !ok {
			return "", false
		}
		return youtubeWatchURL + id, true
	}},
}

func omitString(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

func omitInt(n *int, layout string) (string, bool) {
	if n == nil {
		return "", false
	}
	return fmt.Sprintf(layout, *n), true
}

func naBool(b *bool) (string, bool) {
	switch {
	case b == nil:
		return notAvailable, true
	case *b:
		return "Yes", true
	default:
		return "No", true
	}
}

// joinList joins at most limit entries (0 = all) with ", ".
func joinList(items []string, limit int) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", "), true
}

func airedValue(a anime.AiredRange) (string, bool) {
	if display, ok := omitString(a.Display); ok {
		return display, true
	}
	from, ok := omitString(a.From)
	if !ok {
		return "", false
	}
	to, ok := omitString(a.To)
	if !ok {
		to = "?"
	}
	return from + " to " + to, true
}
