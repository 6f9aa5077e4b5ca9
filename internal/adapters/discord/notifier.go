package discord

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"bundlegen/internal/domain/entities"
	"bundlegen/internal/ports/output"
	discordpkg "bundlegen/pkg/discord"
)

var (
	_ output.Notifier = (*Notifier)(nil)
	_ output.Notifier = NopNotifier{}
)

// Notifier posts export summaries to a Discord webhook.
type Notifier struct {
	session    *discordgo.Session
	webhookID  string
	token      string
	translator output.T
	locale     string
}

// NewNotifier creates a Notifier for webhookURL
// (https://discord.com/api/webhooks/<id>/<token>). Messages are rendered in locale.
func NewNotifier(webhookURL string, translator output.T, locale string) (*Notifier, error) {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return &Notifier{
		session:    s,
		webhookID:  id,
		token:      token,
		translator: translator,
		locale:     locale,
	}, nil
}

func parseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("discord webhook url: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 || parts[0] != "api" || parts[1] != "webhooks" || parts[2] == "" || parts[3] == "" {
		return "", "", fmt.Errorf("discord webhook url: unexpected path %q", u.Path)
	}
	return parts[2], parts[3], nil
}

func (n *Notifier) Notify(ctx context.Context, summary entities.Summary) error {
	embed := discordpkg.BuildSummaryEmbed(summary, n.keyLabel)
	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}
	return nil
}

func (n *Notifier) keyLabel(locale string, count int) string {
	return n.translator.T(n.locale, "export.key_count", map[string]any{
		"Language": n.translator.LanguageName(n.locale, locale),
		"Count":    count,
	})
}

// NopNotifier is used when no webhook is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, entities.Summary) error { return nil }
