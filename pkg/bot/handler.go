package bot

import (
	"context"
	"time"

	"animebot/pkg/command"
	"animebot/pkg/format"
	"animebot/pkg/jikan"
	"animebot/pkg/querylog"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

type Options struct {
	SearchLimit    int
	FixedSubjectID int
	// RichMessages sends cards as embeds; otherwise as plain text.
	RichMessages bool
}

// Handler runs one inbound message to completion. It keeps no state between
// messages, so discordgo may call it concurrently.
type Handler struct {
	client   AnimeClient
	queryLog querylog.Store
	opts     Options
	log      zerolog.Logger
	now      func() time.Time
}

func NewHandler(client AnimeClient, queryLog querylog.Store, opts Options, log zerolog.Logger) *Handler {
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = jikan.DefaultSearchLimit
	}
	return &Handler{
		client:   client,
		queryLog: queryLog,
		opts:     opts,
		log:      log.With().Str("module", "bot").Logger(),
		now:      time.Now,
	}
}

func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.HandleMessage(s, m)
}

func (h *Handler) HandleMessage(s Session, m *discordgo.MessageCreate) {
	// Never react to bots, ourselves included.
	if m.Author == nil || m.Author.Bot || m.Author.System {
		return
	}

	cmd := command.Parse(m.Content)
	if cmd.Kind == command.Ignore {
		return
	}

	log := h.log.With().
		Str("user", m.Author.ID).
		Str("channel", m.ChannelID).
		Stringer("command", cmd.Kind).
		Logger()
	log.Info().Msg("Handling command")

	ctx := log.WithContext(context.Background())

	switch cmd.Kind {
	case command.Help:
		h.sendText(ctx, s, m.ChannelID, format.HelpText)
	case command.SearchByName:
		h.search(ctx, s, m.ChannelID, m.Author.ID, cmd.Query)
	case command.DetailsByID:
		h.details(ctx, s, m.ChannelID, cmd.ID)
	case command.FixedSubjectDetails:
		h.details(ctx, s, m.ChannelID, h.opts.FixedSubjectID)
	case command.RecommendationsByID:
		h.recommendations(ctx, s, m.ChannelID, cmd.ID)
	case command.FixedSubjectRecommendations:
		h.recommendations(ctx, s, m.ChannelID, h.opts.FixedSubjectID)
	case command.InvalidSearch:
		h.sendText(ctx, s, m.ChannelID, format.MissingSearchQuery())
	case command.InvalidDetails:
		h.sendText(ctx, s, m.ChannelID, format.MissingID(format.DetailsUsage))
	case command.InvalidRecommendations:
		h.sendText(ctx, s, m.ChannelID, format.MissingID(format.RecommendationsUsage))
	case command.InvalidID:
		usage := format.DetailsUsage
		if cmd.Target == command.RecommendationsByID {
			usage = format.RecommendationsUsage
		}
		h.sendText(ctx, s, m.ChannelID, format.InvalidID(usage))
	}
}

func (h *Handler) search(ctx context.Context, s Session, channelID, userID, query string) {
	h.sendText(ctx, s, channelID, format.SearchAck(query))

	if err := h.queryLog.RecordQuery(ctx, userID, query); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Error recording query")
	}

	results, err := h.client.SearchAnime(ctx, query, h.opts.SearchLimit)
	if err != nil {
		h.logUpstreamError(ctx, err)
		h.sendText(ctx, s, channelID, format.UpstreamError("searching for anime"))
		return
	}
	if len(results) == 0 {
		h.sendText(ctx, s, channelID, format.NoResults(query))
		return
	}

	h.sendCard(ctx, s, channelID, format.FormatSearchResults(query, results))
}

func (h *Handler) details(ctx context.Context, s Session, channelID string, id int) {
	h.sendText(ctx, s, channelID, format.DetailsAck(id))

	detail, err := h.client.GetDetails(ctx, id)
	if err != nil {
		h.logUpstreamError(ctx, err)
		h.sendText(ctx, s, channelID, format.UpstreamError("fetching anime details"))
		return
	}

	h.sendCard(ctx, s, channelID, format.FormatDetails(detail))
}

func (h *Handler) recommendations(ctx context.Context, s Session, channelID string, id int) {
	h.sendText(ctx, s, channelID, format.RecommendationsAck(id))

	entries, err := h.client.GetRecommendations(ctx, id)
	if err != nil {
		h.logUpstreamError(ctx, err)
		h.sendText(ctx, s, channelID, format.UpstreamError("fetching recommendations"))
		return
	}
	if len(entries) == 0 {
		h.sendText(ctx, s, channelID, format.NoRecommendations(id))
		return
	}

	h.sendCard(ctx, s, channelID, format.FormatRecommendations(id, entries))
}

// logUpstreamError keeps the failure detail in the log; users only see the generic reply.
func (h *Handler) logUpstreamError(ctx context.Context, err error) {
	event := zerolog.Ctx(ctx).Error()
	if jikan.IsNotFound(err) {
		event = zerolog.Ctx(ctx).Warn()
	}
	event.Err(err).Stringer("kind", jikan.KindOf(err)).Msg("Upstream request failed")
}
