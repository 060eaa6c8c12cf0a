package jikan

import "animebot/pkg/anime"

// Wire shapes of the Jikan v4 responses. Only the fields the bot renders are decoded.

type searchResponse struct {
	Data []struct {
		MalID int    `json:"mal_id"`
		Title string `json:"title"`
	} `json:"data"`
}

type imageURLs struct {
	ImageURL *string `json:"image_url"`
}

type imageResource struct {
	JPG *imageURLs `json:"jpg"`
}

func (r *imageResource) url() *string {
	if r == nil || r.JPG == nil {
		return nil
	}
	return r.JPG.ImageURL
}

type titleEntry struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

type trailer struct {
	YoutubeID *string `json:"youtube_id"`
}

type animeDetails struct {
	MalID         int            `json:"mal_id"`
	URL           string         `json:"url"`
	Images        *imageResource `json:"images"`
	Trailer       *trailer       `json:"trailer"`
	Approved      *bool          `json:"approved"`
	Titles        []titleEntry   `json:"titles"`
	Title         string         `json:"title"`
	TitleEnglish  *string        `json:"title_english"`
	TitleJapanese *string        `json:"title_japanese"`
	TitleSynonyms []string       `json:"title_synonyms"`
	Type          *string        `json:"type"`
	Source        *string        `json:"source"`
	Episodes      *int           `json:"episodes"`
	Status        string         `json:"status"`
	Airing        *bool          `json:"airing"`
	Aired         struct {
		From   *string `json:"from"`
		To     *string `json:"to"`
		String *string `json:"string"`
	} `json:"aired"`
	Duration   *string  `json:"duration"`
	Rating     *string  `json:"rating"`
	Score      *float64 `json:"score"`
	ScoredBy   *int     `json:"scored_by"`
	Rank       *int     `json:"rank"`
	Popularity *int     `json:"popularity"`
	Members    *int     `json:"members"`
	Favorites  *int     `json:"favorites"`
	Synopsis   *string  `json:"synopsis"`
}

type detailsResponse struct {
	Data *animeDetails `json:"data"`
}

type recommendationsResponse struct {
	Data []struct {
		Entry struct {
			MalID  int            `json:"mal_id"`
			URL    string         `json:"url"`
			Images *imageResource `json:"images"`
			Title  string         `json:"title"`
		} `json:"entry"`
	} `json:"data"`
}

func (d *animeDetails) toDetail() *anime.AnimeDetail {
	detail := &anime.AnimeDetail{
		ID:            d.MalID,
		URL:           d.URL,
		Title:         d.Title,
		TitleEnglish:  d.TitleEnglish,
		TitleJapanese: d.TitleJapanese,
		Synonyms:      d.TitleSynonyms,
		Approved:      d.Approved,
		Kind:          d.Type,
		Source:        d.Source,
		EpisodeCount:  d.Episodes,
		Status:        d.Status,
		Airing:        d.Airing,
		Aired: anime.AiredRange{
			From:    d.Aired.From,
			To:      d.Aired.To,
			Display: d.Aired.String,
		},
		Duration:      d.Duration,
		Rating:        d.Rating,
		Score:         d.Score,
		ScoredBy:      d.ScoredBy,
		Rank:          d.Rank,
		Popularity:    d.Popularity,
		Members:       d.Members,
		Favorites:     d.Favorites,
		Synopsis:      d.Synopsis,
		CoverImageURL: d.Images.url(),
	}
	if d.Trailer != nil {
		detail.TrailerID = d.Trailer.YoutubeID
	}
	for _, t := range d.Titles {
		if t.Title != "" {
			detail.AlternateTitles = append(detail.AlternateTitles, t.Title)
		}
	}
	return detail
}
