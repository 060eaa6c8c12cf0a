package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Discord embed limits.
const (
	maxEmbedTitle      = 256
	maxEmbedFieldName  = 256
	maxEmbedFieldValue = 1024
	maxEmbedFields     = 25
)

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Card is a rendering-neutral rich message. Embed and PlainText carry the same information.
type Card struct {
	Title        string
	Description  string
	URL          string
	ImageURL     string
	ThumbnailURL string
	Fields       []Field
	Footer       string
}

// Embed converts the card into a Discord embed stamped with ts. A zero ts leaves the timestamp out.
func (c *Card) Embed(ts time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       clampRunes(c.Title, maxEmbedTitle),
		Description: c.Description,
		URL:         c.URL,
		Color:       0x2e51a2,
	}
	if c.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: c.ImageURL}
	}
	if c.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: c.ThumbnailURL}
	}
	if c.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: c.Footer}
	}
	if !ts.IsZero() {
		embed.Timestamp = ts.Format(time.RFC3339)
	}

	for i, f := range c.Fields {
		if i == maxEmbedFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   clampRunes(f.Name, maxEmbedFieldName),
			Value:  clampRunes(f.Value, maxEmbedFieldValue),
			Inline: f.Inline,
		})
	}
	return embed
}

// PlainText renders the card as indented lines for targets without rich messages.
func (c *Card) PlainText() string {
	var sb strings.Builder
	sb.WriteString("**" + c.Title + "**\n")
	if c.URL != "" {
		sb.WriteString("<" + c.URL + ">\n")
	}
	if c.Description != "" {
		sb.WriteString(c.Description + "\n")
	}
	for _, f := range c.Fields {
		fmt.Fprintf(&sb, "  %s: %s\n", f.Name, f.Value)
	}
	if c.ThumbnailURL != "" {
		fmt.Fprintf(&sb, "  Thumbnail: %s\n", c.ThumbnailURL)
	}
	if c.ImageURL != "" {
		fmt.Fprintf(&sb, "  Image: %s\n", c.ImageURL)
	}
	if c.Footer != "" {
		fmt.Fprintf(&sb, "  %s\n", c.Footer)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func clampRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
