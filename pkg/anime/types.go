package anime

// AnimeSummary is a single search hit.
type AnimeSummary struct {
	ID    int
	Title string
}

// AiredRange describes when a title aired. Display, when set, wins over From/To.
type AiredRange struct {
	From    *string
	To      *string
	Display *string
}

// AnimeDetail is the full record returned by a detail lookup.
// Pointer fields are optional and nil when the upstream omitted them.
type AnimeDetail struct {
	ID              int
	URL             string
	Title           string
	TitleEnglish    *string
	TitleJapanese   *string
	Synonyms        []string
	Approved        *bool
	Kind            *string
	Source          *string
	EpisodeCount    *int
	Status          string
	Airing          *bool
	Aired           AiredRange
	Duration        *string
	Rating          *string
	Score           *float64
	ScoredBy        *int
	Rank            *int
	Popularity      *int
	Members         *int
	Favorites       *int
	Synopsis        *string
	CoverImageURL   *string
	TrailerID       *string
	AlternateTitles []string
}

type RecommendationEntry struct {
	ID            int
	Title         string
	URL           string
	CoverImageURL *string
}
