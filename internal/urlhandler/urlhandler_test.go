package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name     string
		inputURL string
		expected string
		wantErr  bool
	}{
		{name: "adds scheme", inputURL: "example.com/page", expected: "http://example.com/page"},
		{name: "lowercases host", inputURL: "HTTPS://Example.COM/Path", expected: "https://example.com/Path"},
		{name: "strips fragment", inputURL: "https://example.com/page#section", expected: "https://example.com/page"},
		{name: "keeps query", inputURL: "https://example.com/?q=1", expected: "https://example.com/?q=1"},
		{name: "empty", inputURL: "   ", wantErr: true},
		{name: "no host", inputURL: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.inputURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateURLFormat(t *testing.T) {
	assert.NoError(t, ValidateURLFormat("https://example.com"))
	assert.Error(t, ValidateURLFormat(""))
	assert.Error(t, ValidateURLFormat("not a url"))
}

func TestJoinPathSegment(t *testing.T) {
	got, err := JoinPathSegment("https://ntfy.sh/", "alerts")
	require.NoError(t, err)
	assert.Equal(t, "https://ntfy.sh/alerts", got)

	got, err = JoinPathSegment("https://ntfy.sh", "a b")
	require.NoError(t, err)
	assert.Equal(t, "https://ntfy.sh/a%20b", got)

	_, err = JoinPathSegment("https://ntfy.sh", "")
	assert.Error(t, err)
}
