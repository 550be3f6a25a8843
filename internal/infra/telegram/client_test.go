package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type sentMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func newBotServer(t *testing.T, handler func(w http.ResponseWriter, msg sentMessage)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)

		var msg sentMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		w.Header().Set("Content-Type", "application/json")
		handler(w, msg)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	var got []sentMessage
	srv := newBotServer(t, func(w http.ResponseWriter, msg sentMessage) {
		got = append(got, msg)
		w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1700000000,"chat":{"id":123456,"type":"private"},"text":"ok"}}`))
	})

	bot, err := NewBot("test-token", srv.URL)
	require.NoError(t, err)
	adapter := NewTelebotAdapter(bot)

	require.NoError(t, adapter.SendMessage("123456", "Работа взята на проверку ревьюером.", nil))
	require.NoError(t, adapter.SendMessage("@homework_channel", "plain", &telebot.SendOptions{ParseMode: telebot.ModeHTML}))

	require.Len(t, got, 2)
	assert.Equal(t, "123456", got[0].ChatID)
	assert.Equal(t, "Работа взята на проверку ревьюером.", got[0].Text)
	assert.Equal(t, "@homework_channel", got[1].ChatID)
	assert.Equal(t, telebot.ModeHTML, got[1].ParseMode)
}

func TestTelebotAdapter_SendMessage_APIError(t *testing.T) {
	srv := newBotServer(t, func(w http.ResponseWriter, msg sentMessage) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	bot, err := NewBot("test-token", srv.URL)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage("0", "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}
