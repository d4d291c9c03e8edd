package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversationDefaultTitle(t *testing.T) {
	conversation := NewConversation("")
	assert.Equal(t, DefaultConversationTitle, conversation.Title)
	assert.False(t, conversation.CreatedAt.IsZero())

	conversation = NewConversation("Debugging session")
	assert.Equal(t, "Debugging session", conversation.Title)
}

func TestTitleFromMessage(t *testing.T) {
	assert.Equal(t, "short message", TitleFromMessage("short message"))

	long := strings.Repeat("a", 50)
	title := TitleFromMessage(long)
	assert.Equal(t, strings.Repeat("a", 40)+"…", title)

	// Exactly at the limit: no truncation marker.
	exact := strings.Repeat("b", 40)
	assert.Equal(t, exact, TitleFromMessage(exact))

	// Truncation counts runes, not bytes.
	unicode := strings.Repeat("é", 41)
	assert.Equal(t, strings.Repeat("é", 40)+"…", TitleFromMessage(unicode))
}

func TestNewMessageValidation(t *testing.T) {
	message, err := NewMessage("abc123", RoleUser, "hi there")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, message.Role)
	assert.Equal(t, "abc123", message.ConversationID)
	assert.False(t, message.CreatedAt.IsZero())

	_, err = NewMessage("abc123", Role("system"), "hi")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = NewMessage("abc123", RoleAssistant, "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
