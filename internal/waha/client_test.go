package waha_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wahactl/internal/waha"
)

type captured struct {
	method   string
	path     string
	query    map[string][]string
	apiKey   string
	bodyJSON map[string]any
	rawBody  []byte
}

// newServer runs a TLS server with a self-signed certificate, which only
// works because the client skips verification.
func newServer(t *testing.T, status int, respBody string) (*waha.Client, *captured) {
	t.Helper()
	got := &captured{}
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.Query()
		got.apiKey = r.Header.Get("X-Api-Key")
		got.rawBody, _ = io.ReadAll(r.Body)
		if len(got.rawBody) > 0 {
			_ = json.Unmarshal(got.rawBody, &got.bodyJSON)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(ts.Close)

	client := waha.New(ts.URL, "test-key")
	t.Cleanup(client.Close)
	return client, got
}

func TestClient_SendsAPIKeyHeader(t *testing.T) {
	client, got := newServer(t, http.StatusOK, `[]`)

	_, err := client.Sessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-key", got.apiKey)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/sessions", got.path)
}

func TestClient_ChatMessagesQuery(t *testing.T) {
	client, got := newServer(t, http.StatusOK, `[]`)

	_, err := client.ChatMessages(context.Background(), "default", "123@c.us",
		waha.Page{Limit: 20, Offset: 5}, true)
	require.NoError(t, err)

	assert.Equal(t, "/api/default/chats/123@c.us/messages", got.path)
	assert.Equal(t, []string{"20"}, got.query["limit"])
	assert.Equal(t, []string{"5"}, got.query["offset"])
	assert.Equal(t, []string{"true"}, got.query["downloadMedia"])
	assert.Equal(t, []string{"timestamp"}, got.query["sortBy"])
	assert.Equal(t, []string{"desc"}, got.query["sortOrder"])
}

func TestClient_ChatsSortByConversationTimestamp(t *testing.T) {
	client, got := newServer(t, http.StatusOK, `[]`)

	_, err := client.Chats(context.Background(), "default", waha.Page{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"conversationTimestamp"}, got.query["sortBy"])
	assert.Equal(t, []string{"desc"}, got.query["sortOrder"])
}

func TestClient_SendText(t *testing.T) {
	client, got := newServer(t, http.StatusOK, `{}`)

	_, err := client.SendText(context.Background(), waha.TextRequest{
		ChatID:  "123@c.us",
		Text:    "hi",
		Session: "default",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/sendText", got.path)
	assert.Equal(t, "123@c.us", got.bodyJSON["chatId"])
	assert.Equal(t, "hi", got.bodyJSON["text"])
	assert.Equal(t, "default", got.bodyJSON["session"])
	assert.NotContains(t, got.bodyJSON, "reply_to")
}

func TestClient_SendVoiceAlwaysConverts(t *testing.T) {
	client, got := newServer(t, http.StatusOK, `{}`)

	_, err := client.SendMedia(context.Background(), waha.MediaVoice, waha.MediaRequest{
		ChatID:  "123@c.us",
		File:    waha.Attachment{URL: "https://example.com/a.ogg"},
		Session: "default",
		Convert: waha.MediaVoice.NeedsConvert(),
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/sendVoice", got.path)
	assert.Equal(t, true, got.bodyJSON["convert"])
	file, ok := got.bodyJSON["file"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a.ogg", file["url"])
	assert.NotContains(t, file, "mimetype")
}

func TestClient_SendImageNeverConverts(t *testing.T) {
	client, got := newServer(t, http.StatusOK, `{}`)

	_, err := client.SendMedia(context.Background(), waha.MediaImage, waha.MediaRequest{
		ChatID:  "123@c.us",
		File:    waha.Attachment{URL: "https://example.com/a.jpg"},
		Session: "default",
		Convert: waha.MediaImage.NeedsConvert(),
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/sendImage", got.path)
	assert.NotContains(t, got.bodyJSON, "convert")
}

func TestClient_CreateGroupPayload(t *testing.T) {
	client, got := newServer(t, http.StatusCreated, `{}`)

	_, err := client.CreateGroup(context.Background(), "default", "Team",
		[]string{"1@c.us", "2@c.us"})
	require.NoError(t, err)

	assert.Equal(t, "/api/default/groups", got.path)
	assert.Equal(t, "Team", got.bodyJSON["name"])
	assert.Equal(t, []any{
		map[string]any{"id": "1@c.us"},
		map[string]any{"id": "2@c.us"},
	}, got.bodyJSON["participants"])
}

func TestClient_BlockContactPayload(t *testing.T) {
	client, got := newServer(t, http.StatusOK, ``)

	res, err := client.BlockContact(context.Background(), "default", "1@c.us")
	require.NoError(t, err)
	assert.Equal(t, "/api/contacts/block", got.path)
	assert.Equal(t, "1@c.us", got.bodyJSON["contactId"])
	assert.Equal(t, "default", got.bodyJSON["session"])
	assert.Nil(t, res.Any())
}

func TestClient_ErrorWithJSONBody(t *testing.T) {
	client, _ := newServer(t, http.StatusNotFound, `{"error": "no such chat"}`)

	_, err := client.Group(context.Background(), "default", "x@g.us")
	require.Error(t, err)

	var apiErr *waha.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, `HTTP 404: {"error":"no such chat"}`, apiErr.Error())
}

func TestClient_ErrorWithTextBody(t *testing.T) {
	client, _ := newServer(t, http.StatusBadGateway, "upstream down\n")

	_, err := client.Sessions(context.Background())
	var apiErr *waha.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "HTTP 502: upstream down", apiErr.Error())
}

func TestParseMediaKind(t *testing.T) {
	kind, err := waha.ParseMediaKind("video")
	require.NoError(t, err)
	assert.True(t, kind.NeedsConvert())

	kind, err = waha.ParseMediaKind("file")
	require.NoError(t, err)
	assert.False(t, kind.NeedsConvert())

	_, err = waha.ParseMediaKind("gif")
	require.Error(t, err)
}
