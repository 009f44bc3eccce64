package extractor

import (
	"errors"
	"testing"

	"github.com/aleister1102/siteeagle/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html><head><title>t</title></head><body>
<div class="price">10 EUR</div>
<p>ignored</p>
<div class="price"><b>12</b> EUR</div>
</body></html>`

func TestSelectorExtractor_Extract(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		expected string
	}{
		{
			name:     "class selector keeps document order",
			selector: ".price",
			expected: "<div class=\"price\">10 EUR</div>\n<div class=\"price\"><b>12</b> EUR</div>",
		},
		{
			name:     "descendant selector",
			selector: "div.price b",
			expected: "<b>12</b>",
		},
		{
			name:     "no matches",
			selector: "#missing",
			expected: "",
		},
	}

	se := NewSelectorExtractor(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := se.Extract(testPage, tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSelectorExtractor_Extract_NoSelector(t *testing.T) {
	se := NewSelectorExtractor(zerolog.Nop())

	got, err := se.Extract("plain body\n", "")
	require.NoError(t, err)
	assert.Equal(t, "plain body\n", got)
}

func TestSelectorExtractor_Extract_DuplicatesKept(t *testing.T) {
	se := NewSelectorExtractor(zerolog.Nop())

	got, err := se.Extract(`<ul><li>a</li><li>a</li></ul>`, "li")
	require.NoError(t, err)
	assert.Equal(t, "<li>a</li>\n<li>a</li>", got)
}

func TestSelectorExtractor_Extract_InvalidSelector(t *testing.T) {
	se := NewSelectorExtractor(zerolog.Nop())

	_, err := se.Extract(testPage, "div[")

	var vErr *common.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "selector", vErr.Field)
}

func TestSelectorExtractor_Decode(t *testing.T) {
	se := NewSelectorExtractor(zerolog.Nop())

	got, err := se.Decode([]byte("caf\xe9"), "text/plain; charset=iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	got, err = se.Decode([]byte("déjà vu"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "déjà vu", got)
}
