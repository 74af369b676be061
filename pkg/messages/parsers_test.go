package messages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubenmartin/motech/pkg/messages"
)

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file     string
		expected messages.Parser
	}{
		{file: "messages_en.properties", expected: &messages.PropertiesParser{}},
		{file: "messages.yaml", expected: &messages.YAMLParser{}},
		{file: "messages.YML", expected: &messages.YAMLParser{}},
		{file: "messages_pl.toml", expected: &messages.TOMLParser{}},
		{file: "messages.json", expected: &messages.JSONParser{}},
		{file: "messages.txt", expected: nil},
		{file: "messages", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			p := messages.NewParserForFile(tt.file)
			if tt.expected == nil {
				assert.Nil(t, p)
				return
			}
			assert.IsType(t, tt.expected, p)
		})
	}
}

func TestSupportsFileExtension(t *testing.T) {
	t.Parallel()

	assert.True(t, messages.NewPropertiesParser().SupportsFileExtension(".properties"))
	assert.True(t, messages.NewYAMLParser().SupportsFileExtension("yml"))
	assert.True(t, messages.NewYAMLParser().SupportsFileExtension(".YAML"))
	assert.True(t, messages.NewTOMLParser().SupportsFileExtension("toml"))
	assert.True(t, messages.NewJSONParser().SupportsFileExtension(".json"))
	assert.False(t, messages.NewJSONParser().SupportsFileExtension("yaml"))
}

func TestPropertiesParser(t *testing.T) {
	t.Parallel()

	content := []byte(`# comment
greeting=Hello {0}
home.title = Home page
path=${HOME}/bundles
multi=first \
  second
unicode=Zażółć
`)

	got, err := messages.NewPropertiesParser().Parse(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "Hello {0}", got["greeting"])
	assert.Equal(t, "Home page", got["home.title"])
	assert.Equal(t, "${HOME}/bundles", got["path"])
	assert.Equal(t, "first second", got["multi"])
	assert.Equal(t, "Zażółć", got["unicode"])
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	content := []byte(`
greeting: "Hello {0}"
home:
  title: Home page
  count: 3
  enabled: true
empty:
`)

	got, err := messages.NewYAMLParser().Parse(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"greeting":     "Hello {0}",
		"home.title":   "Home page",
		"home.count":   "3",
		"home.enabled": "true",
		"empty":        "",
	}, got)
}

func TestYAMLParserRejectsLists(t *testing.T) {
	t.Parallel()

	_, err := messages.NewYAMLParser().Parse(context.Background(), []byte("days: [mon, tue]\n"))
	assert.ErrorIs(t, err, messages.ErrUnsupportedValue)
}

func TestTOMLParser(t *testing.T) {
	t.Parallel()

	content := []byte(`
greeting = "Witaj {0}"

[home]
title = "Strona główna"

[home.menu]
logout = "Wyloguj"
`)

	got, err := messages.NewTOMLParser().Parse(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"greeting":         "Witaj {0}",
		"home.title":       "Strona główna",
		"home.menu.logout": "Wyloguj",
	}, got)
}

func TestJSONParser(t *testing.T) {
	t.Parallel()

	got, err := messages.NewJSONParser().Parse(context.Background(),
		[]byte(`{"greeting": "Hallo {0}", "home": {"title": "Startseite"}, "n": 2}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"greeting":   "Hallo {0}",
		"home.title": "Startseite",
		"n":          "2",
	}, got)
}

func TestParsersRejectMalformedContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parser  messages.Parser
		content string
	}{
		{name: "yaml", parser: messages.NewYAMLParser(), content: "key: [unclosed"},
		{name: "toml", parser: messages.NewTOMLParser(), content: "key = "},
		{name: "json", parser: messages.NewJSONParser(), content: "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.parser.Parse(context.Background(), []byte(tt.content))
			assert.ErrorIs(t, err, messages.ErrParseBundle)
		})
	}
}

func TestParsersRespectCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parsers := []messages.Parser{
		messages.NewPropertiesParser(),
		messages.NewYAMLParser(),
		messages.NewTOMLParser(),
		messages.NewJSONParser(),
	}
	for _, p := range parsers {
		_, err := p.Parse(ctx, []byte(""))
		assert.ErrorIs(t, err, messages.ErrLoadCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	}
}
