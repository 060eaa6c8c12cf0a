package bot

import (
	"github.com/bwmarrin/discordgo"
)

// StatusUpdater is satisfied by *discordgo.Session.
type StatusUpdater interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// SetStatus shows text as the bot's "Watching" activity.
func SetStatus(s StatusUpdater, text string) error {
	return s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{
			{
				Name: text,
				Type: discordgo.ActivityTypeWatching,
			},
		},
		Status: string(discordgo.StatusOnline),
		AFK:    false,
	})
}
