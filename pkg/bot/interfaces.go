package bot

import (
	"context"

	"animebot/pkg/anime"

	"github.com/bwmarrin/discordgo"
)

// Session is the subset of *discordgo.Session the handler sends through.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Session = (*discordgo.Session)(nil)

// AnimeClient is implemented by *jikan.Client.
type AnimeClient interface {
	SearchAnime(ctx context.Context, query string, limit int) ([]anime.AnimeSummary, error)
	GetDetails(ctx context.Context, id int) (*anime.AnimeDetail, error)
	GetRecommendations(ctx context.Context, id int) ([]anime.RecommendationEntry, error)
}
