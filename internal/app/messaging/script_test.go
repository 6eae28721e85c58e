package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bezel/internal/application/port"
)

func TestNotificationScript(t *testing.T) {
	tests := []struct {
		name string
		n    port.Notification
		want string
	}{
		{
			name: "tab created",
			n:    port.NewNotification(port.ChannelTabCreated, 1, "https://www.google.com", true),
			want: `window.__bezel && window.__bezel.receive("tab-created", [1,"https://www.google.com",true]);`,
		},
		{
			name: "null active id",
			n:    port.NewNotification(port.ChannelTabActivated, nil),
			want: `window.__bezel && window.__bezel.receive("tab-activated", [null]);`,
		},
		{
			name: "no args",
			n:    port.Notification{Channel: port.ChannelSurfaceIdentity},
			want: `window.__bezel && window.__bezel.receive("surface-identity", []);`,
		},
		{
			name: "quotes are escaped",
			n:    port.NewNotification(port.ChannelTabTitleUpdated, 2, `say "hi"</script>`),
			want: `window.__bezel && window.__bezel.receive("tab-title-updated", [2,"say \"hi\"\u003c/script\u003e"]);`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NotificationScript(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotificationScript_UnencodableArg(t *testing.T) {
	_, err := NotificationScript(port.NewNotification(port.ChannelTabCreated, make(chan int)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tab-created")
}

func TestReplyScript(t *testing.T) {
	got, err := ReplyScript("q-7", 3)
	require.NoError(t, err)
	assert.Equal(t, `window.__bezel && window.__bezel.reply("q-7", 3);`, got)

	got, err = ReplyScript("q-8", nil)
	require.NoError(t, err)
	assert.Equal(t, `window.__bezel && window.__bezel.reply("q-8", null);`, got)

	_, err = ReplyScript("", 1)
	assert.ErrorIs(t, err, ErrMissingRequestID)
}
