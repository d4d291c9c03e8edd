package responder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondNeverEmpty(t *testing.T) {
	inputs := []string{
		"hello",
		"how do I deploy this",
		"react hooks",
		"what database should I use",
		"asdfqwerty",
		"   padded input   ",
		"x",
	}
	for _, input := range inputs {
		assert.NotEmpty(t, Respond(input), "input %q", input)
	}
}

func TestRespondDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Respond("tell me about react"), Respond("tell me about react"))
		assert.Equal(t, Respond("asdfqwerty"), Respond("asdfqwerty"))
	}
}

func TestRespondRulePrecedence(t *testing.T) {
	// The greeting rule is checked before the deployment rule.
	reply := Respond("hello, can you help me deploy")
	assert.Contains(t, reply, "CodeBro")
	assert.NotContains(t, reply, "Deployment tips")
}

func TestRespondDatabaseQuestion(t *testing.T) {
	reply := Respond("what database should I use")
	assert.Contains(t, reply, "MongoDB patterns")
}

func TestRespondCaseInsensitive(t *testing.T) {
	assert.Equal(t, Respond("HELLO THERE"), Respond("hello there"))
}

func TestRespondDefaultEchoesInput(t *testing.T) {
	reply := Respond("  asdfqwerty  ")
	assert.Contains(t, reply, `"asdfqwerty"`)
	assert.NotContains(t, reply, "  asdfqwerty  ", "echo uses the trimmed input")
}

func TestRulesHaveKeywordsAndReplies(t *testing.T) {
	require.NotEmpty(t, Rules)
	for _, rule := range Rules {
		assert.NotEmpty(t, rule.Keywords)
		assert.NotEmpty(t, rule.Reply)
		for _, keyword := range rule.Keywords {
			assert.Equal(t, strings.ToLower(keyword), keyword, "keywords must be lowercase")
		}
	}
}
