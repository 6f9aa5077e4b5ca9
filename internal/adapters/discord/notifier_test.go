package discord

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"bundlegen/internal/domain/entities"
)

type fakeT struct{}

func (fakeT) T(locale, key string, data map[string]any) string {
	return fmt.Sprintf("%s:%s:%v:%v", locale, key, data["Language"], data["Count"])
}

func (fakeT) LanguageName(locale, target string) string { return locale + "-" + target }

func TestParseWebhookURL(t *testing.T) {
	id, token, err := parseWebhookURL("https://discord.com/api/webhooks/123456/s3cr3t")
	require.NoError(t, err)
	require.Equal(t, "123456", id)
	require.Equal(t, "s3cr3t", token)

	for _, raw := range []string{
		"https://discord.com/api/webhooks/123456",
		"https://discord.com/api/channels/1/2",
		"https://discord.com/api/webhooks//token",
		"https://discord.com/api/webhooks/1/2/3",
	} {
		_, _, err := parseWebhookURL(raw)
		require.Error(t, err, raw)
	}
}

func TestNewNotifier(t *testing.T) {
	n, err := NewNotifier("https://discord.com/api/webhooks/1/tok", fakeT{}, "ja")
	require.NoError(t, err)
	require.Equal(t, "1", n.webhookID)
	require.Equal(t, "tok", n.token)
	require.Equal(t, "ja:export.key_count:ja-en:3", n.keyLabel("en", 3))

	_, err = NewNotifier("https://discord.com/nope", fakeT{}, "ja")
	require.Error(t, err)
}

func TestNopNotifier(t *testing.T) {
	require.NoError(t, NopNotifier{}.Notify(context.Background(), entities.Summary{}))
}
