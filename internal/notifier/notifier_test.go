package notifier

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aleister1102/siteeagle/internal/common"
	"github.com/aleister1102/siteeagle/internal/config"
	"github.com/aleister1102/siteeagle/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newRecordingServer(t *testing.T, status int) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func newTestClient(t *testing.T) *httpclient.HTTPClient {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	return client
}

func TestNewNotifier_Webhook(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK)

	watchCfg := config.WatchConfig{WebhookURL: server.URL + "/hook"}
	n, err := NewNotifier(watchCfg, config.NewDefaultNotificationConfig(), newTestClient(t), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ChannelWebhook, n.Channel())

	require.NoError(t, n.Notify(context.Background(), "hello"))
	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodPost, (*requests)[0].method)
	assert.Equal(t, "/hook", (*requests)[0].path)
	assert.Equal(t, "hello", (*requests)[0].body)
}

func TestNewNotifier_Ntfy(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK)

	watchCfg := config.WatchConfig{NtfyChannel: "alerts"}
	notifCfg := config.NotificationConfig{NtfyServerURL: server.URL + "/", TimeoutSeconds: 5}
	n, err := NewNotifier(watchCfg, notifCfg, newTestClient(t), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ChannelNtfy, n.Channel())

	require.NoError(t, n.Notify(context.Background(), "x"))
	require.Len(t, *requests, 1)
	assert.Equal(t, "/alerts", (*requests)[0].path)
	assert.Equal(t, "x", (*requests)[0].body)
}

func TestNewNotifier_WebhookTakesPriority(t *testing.T) {
	webhook, webhookRequests := newRecordingServer(t, http.StatusOK)
	ntfy, ntfyRequests := newRecordingServer(t, http.StatusOK)

	watchCfg := config.WatchConfig{WebhookURL: webhook.URL, NtfyChannel: "alerts"}
	notifCfg := config.NotificationConfig{NtfyServerURL: ntfy.URL}
	n, err := NewNotifier(watchCfg, notifCfg, newTestClient(t), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), "payload"))
	assert.Len(t, *webhookRequests, 1)
	assert.Empty(t, *ntfyRequests)
}

func TestNewNotifier_Nop(t *testing.T) {
	n, err := NewNotifier(config.WatchConfig{}, config.NewDefaultNotificationConfig(), nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ChannelNop, n.Channel())
	assert.NoError(t, n.Notify(context.Background(), "ignored"))
}

func TestNotifier_NonSuccessStatus(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusInternalServerError)

	n := NewWebhookNotifier(server.URL, newTestClient(t), zerolog.Nop())
	err := n.Notify(context.Background(), "payload")
	require.Error(t, err)

	var notifyErr *NotifyError
	require.True(t, errors.As(err, &notifyErr))
	assert.Equal(t, ChannelWebhook, notifyErr.Channel)
	assert.Equal(t, server.URL, notifyErr.Target)

	var httpErr *common.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestNotifier_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close()

	n := NewNtfyNotifier(target+"/alerts", newTestClient(t), zerolog.Nop())
	err := n.Notify(context.Background(), "payload")

	var notifyErr *NotifyError
	require.True(t, errors.As(err, &notifyErr))
	assert.Equal(t, ChannelNtfy, notifyErr.Channel)
	var netErr *common.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

type failingNotifier struct {
	calls atomic.Int32
}

func (f *failingNotifier) Channel() string { return "test" }

func (f *failingNotifier) Notify(context.Context, string) error {
	f.calls.Add(1)
	return &NotifyError{Channel: "test", Target: "nowhere", Err: errors.New("down")}
}

func TestNotificationHelper_SwallowsErrors(t *testing.T) {
	var logs bytes.Buffer
	n := &failingNotifier{}
	helper := NewNotificationHelper(n, config.NewDefaultNotificationConfig(), zerolog.New(&logs))

	assert.NotPanics(t, func() {
		helper.Send(context.Background(), "payload")
	})
	assert.Equal(t, int32(1), n.calls.Load())
	assert.Contains(t, logs.String(), "Failed to send notification")
	assert.Contains(t, logs.String(), "down")
}

func TestNotificationHelper_NilNotifier(t *testing.T) {
	helper := NewNotificationHelper(nil, config.NotificationConfig{}, zerolog.Nop())
	assert.NotPanics(t, func() {
		helper.Send(context.Background(), "payload")
	})
}

func TestFormatErrorMessage(t *testing.T) {
	assert.Equal(t, "Siteeagle for 'http://x' had an error.", FormatErrorMessage("http://x", false))
	assert.Equal(t, "[TERMINATING!] Siteeagle for 'http://x' had an error.", FormatErrorMessage("http://x", true))
}
