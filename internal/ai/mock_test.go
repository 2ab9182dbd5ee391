package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
)

func answer(turns []types.Turn, q *Response, reply string) []types.Turn {
	turns = append(turns, types.Turn{Role: types.RoleAssistant, Content: q.Message})
	return append(turns, types.Turn{Role: types.RoleUser, Content: reply})
}

func TestMockClient_OpensWithRecipientQuestion(t *testing.T) {
	mock := NewMockClient()

	resp, err := mock.Respond(context.Background(), nil, "Priya", "en")
	require.NoError(t, err)

	assert.Equal(t, TypeQuestion, resp.Type)
	assert.Contains(t, resp.Message, "Priya")
	assert.Contains(t, resp.Message, "Who are you looking to buy jewelry for?")
	assert.NotEmpty(t, resp.Options)
}

func TestMockClient_QuestionSequence(t *testing.T) {
	mock := NewMockClient()
	ctx := context.Background()
	var turns []types.Turn

	replies := []string{"For my partner", "Ring", "Anniversary", "$2,000 - $5,000"}
	wantTopics := []string{"Who are you looking", "type of jewelry piece", "occasion", "price range"}

	for i, reply := range replies {
		resp, err := mock.Respond(ctx, turns, "", "en")
		require.NoError(t, err)
		require.Equal(t, TypeQuestion, resp.Type)
		assert.Contains(t, resp.Message, wantTopics[i])
		turns = answer(turns, resp, reply)
	}

	resp, err := mock.Respond(ctx, turns, "", "en")
	require.NoError(t, err)
	assert.Equal(t, TypeQuestion, resp.Type)
	assert.Contains(t, resp.Message, "style")
}

func TestMockClient_RecommendsAfterFiveAnswers(t *testing.T) {
	mock := NewMockClient()
	ctx := context.Background()
	var turns []types.Turn

	for _, reply := range []string{"For my partner", "Ring", "Anniversary", "$2,000 - $5,000", "Classic & Timeless"} {
		resp, err := mock.Respond(ctx, turns, "", "en")
		require.NoError(t, err)
		turns = answer(turns, resp, reply)
	}

	resp, err := mock.Respond(ctx, turns, "", "en")
	require.NoError(t, err)

	assert.Equal(t, TypeProducts, resp.Type)
	assert.Equal(t, "Ring", resp.Category)
	assert.Contains(t, resp.Tags, "classic")
	assert.NotEmpty(t, resp.Metadata)
}

func TestMockClient_KeywordTriggersRecommendation(t *testing.T) {
	mock := NewMockClient()
	turns := []types.Turn{
		{Role: types.RoleAssistant, Content: "What type of jewelry piece are you interested in?"},
		{Role: types.RoleUser, Content: "Show me necklace suggestions please"},
	}

	resp, err := mock.Respond(context.Background(), turns, "", "en")
	require.NoError(t, err)

	assert.Equal(t, TypeProducts, resp.Type)
	assert.Equal(t, "Pendant", resp.Category, "necklaces are recommended from the pendant category")
}

func TestMockClient_CategoryDetection(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"I want earrings for a wedding", "Earring"},
		{"a ring please", "Ring"},
		{"a gold bangle", "Bracelet"},
		{"pendant for my mother", "Pendant"},
		{"something nice", "Pendant"},
	}

	for _, tt := range tests {
		turns := []types.Turn{{Role: types.RoleUser, Content: tt.content}}
		assert.Equal(t, tt.want, preferredCategory(turns), "content: %s", tt.content)
	}
}
