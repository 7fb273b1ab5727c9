package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePushExplicitAccount(t *testing.T) {
	account, hint, err := ParsePush([]byte(`{"account":"@Acme","post_id":"42"}`))
	require.NoError(t, err)
	assert.Equal(t, "acme", account, "username is normalized")
	assert.Equal(t, "42", hint)
}

func TestParsePushFromStatusLink(t *testing.T) {
	account, hint, err := ParsePush([]byte(`{"link":"https://example.com/Acme/status/998877"}`))
	require.NoError(t, err)
	assert.Equal(t, "acme", account)
	assert.Equal(t, "998877", hint, "post id falls out of the permalink")
}

func TestParsePushFromAtLink(t *testing.T) {
	account, _, err := ParsePush([]byte(`{"link":"https://example.com/@acme"}`))
	require.NoError(t, err)
	assert.Equal(t, "acme", account)
}

func TestParsePushFromTitleMention(t *testing.T) {
	account, _, err := ParsePush([]byte(`{"title":"New post by @Acme just dropped"}`))
	require.NoError(t, err)
	assert.Equal(t, "acme", account)
}

func TestParsePushFromFeedTitle(t *testing.T) {
	account, _, err := ParsePush([]byte(`{"feed_title":"Acme Corp - @acme_corp"}`))
	require.NoError(t, err)
	assert.Equal(t, "acme_corp", account)
}

func TestParsePushPrecedence(t *testing.T) {
	// Explicit account wins over link and title.
	account, _, err := ParsePush([]byte(
		`{"account":"first","link":"https://example.com/second/status/1","title":"@third"}`))
	require.NoError(t, err)
	assert.Equal(t, "first", account)
}

func TestParsePushMalformed(t *testing.T) {
	_, _, err := ParsePush([]byte(`not json`))
	require.Error(t, err)
}

func TestParsePushNoAccount(t *testing.T) {
	_, _, err := ParsePush([]byte(`{"title":"nothing to see here"}`))
	require.Error(t, err)
}

func TestUsernameFromLinkRejectsOddShapes(t *testing.T) {
	assert.Empty(t, usernameFromLink("https://example.com/"))
	assert.Empty(t, usernameFromLink("https://example.com/help/about"))
	assert.Empty(t, usernameFromLink("::not a url"))
}
