package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"bundlegen/internal/domain/entities"
	"bundlegen/pkg/tz"
)

const (
	embedColor     = 0x5865F2
	embedTitleIcon = "📦"
	timeLayout     = "2006/01/02 15:04"
	maxFieldValue  = 1024
)

// BuildSummaryEmbed renders an export summary: one field per written file.
// keyLabel formats the key count line of a locale (e.g. "日本語キー数: 122").
func BuildSummaryEmbed(summary entities.Summary, keyLabel func(locale string, count int) string) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(summary.Outputs))
	for _, out := range summary.Outputs {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  out.Path,
			Value: truncate(fmt.Sprintf("%s\n`%s`", keyLabel(out.Locale, out.Keys), shortDigest(out.Digest)), maxFieldValue),
		})
	}
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s %s", embedTitleIcon, summary.Set),
		Color:  embedColor,
		Fields: fields,
	}
	if !summary.StartedAt.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: summary.StartedAt.In(tz.Tokyo).Format(timeLayout) + " JST"}
	}
	return embed
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	var b strings.Builder
	for _, c := range r {
		if b.Len()+len(string(c)) > n-len("…") {
			break
		}
		b.WriteRune(c)
	}
	return b.String() + "…"
}
