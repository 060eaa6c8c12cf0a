package bot

import (
	"context"
	"strings"

	"animebot/pkg/format"

	"github.com/rs/zerolog"
)

// maxMessageLength is Discord's limit for a plain message.
const maxMessageLength = 2000

// sendText sends content, split on line boundaries when it exceeds Discord's limit.
// Delivery failures are logged and swallowed.
func (h *Handler) sendText(ctx context.Context, s Session, channelID, content string) {
	for _, part := range splitMessage(content, maxMessageLength) {
		if _, err := s.ChannelMessageSend(channelID, part); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("Error sending message")
		}
	}
}

func (h *Handler) sendCard(ctx context.Context, s Session, channelID string, card *format.Card) {
	if !h.opts.RichMessages {
		h.sendText(ctx, s, channelID, card.PlainText())
		return
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, card.Embed(h.now())); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Error sending embed")
	}
}

// splitMessage breaks content into parts of at most limit runes, preferring
// line breaks. Lines longer than limit are cut hard.
func splitMessage(content string, limit int) []string {
	if len([]rune(content)) <= limit {
		return []string{content}
	}

	var parts []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			parts = append(parts, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.SplitAfter(content, "\n") {
		r := []rune(line)
		for len(r) > limit {
			flush()
			parts = append(parts, string(r[:limit]))
			r = r[limit:]
		}
		if currentLen+len(r) > limit {
			flush()
		}
		current.WriteString(string(r))
		currentLen += len(r)
	}
	flush()

	for i, p := range parts {
		parts[i] = strings.TrimRight(p, "\n")
	}
	return parts
}
