package openai

import (
	"encoding/json"
	"testing"

	"github.com/armandmorin/wp-autoplugin/pkg/chats/chat"
	"github.com/armandmorin/wp-autoplugin/pkg/chats/message"
	"github.com/armandmorin/wp-autoplugin/pkg/chats/role"
	"github.com/armandmorin/wp-autoplugin/pkg/providers/model"
	"github.com/stretchr/testify/assert"
)

func TestOverrides_Apply_Nil(t *testing.T) {
	req := newRequest(model.Default().Select("gpt-4o"), chat.ForPrompt("", "hi"))
	want := req

	var o *Overrides
	o.apply(&req)

	assert.Equal(t, want, req)
}

func TestOverrides_Apply_EmptyMessagesReplaceConversation(t *testing.T) {
	req := newRequest(model.Default(), chat.ForPrompt("sys", "hi"))

	(&Overrides{Messages: []message.Message{}}).apply(&req)

	assert.NotNil(t, req.Messages)
	assert.Empty(t, req.Messages)
}

func TestOverrides_Apply_ResponseFormatIsCopied(t *testing.T) {
	rf := &ResponseFormat{Type: "json_schema", JSONSchema: json.RawMessage(`{"name":"plan"}`)}
	req := newRequest(model.Default(), chat.ForPrompt("", "hi"))

	(&Overrides{ResponseFormat: rf}).apply(&req)
	rf.Type = "text"

	assert.Equal(t, "json_schema", req.ResponseFormat.Type)
	assert.JSONEq(t, `{"name":"plan"}`, string(req.ResponseFormat.JSONSchema))
}

func TestNewRequest_FromConfiguration(t *testing.T) {
	m := model.Model{Name: "custom", Temperature: 0.5, MaxTokens: 10}
	conv := chat.ForPrompt("", "a")
	conv.Append(message.New(role.Assistant, "b"))

	req := newRequest(m, conv)

	assert.Equal(t, "custom", req.Model)
	assert.InDelta(t, 0.5, req.Temperature, 1e-9)
	assert.Equal(t, 10, req.MaxTokens)
	assert.Equal(t, []apiMessage{{Role: "user", Content: "a"}, {Role: "assistant", Content: "b"}}, req.Messages)
	assert.Nil(t, req.ResponseFormat)
}

func TestAPIResponse_Content(t *testing.T) {
	var resp apiResponse
	_, ok := resp.content()
	assert.False(t, ok)
	assert.Empty(t, resp.finishReason())

	assert.NoError(t, json.Unmarshal([]byte(`{"choices":[{"message":{"content":null},"finish_reason":"length"}]}`), &resp))
	_, ok = resp.content()
	assert.False(t, ok)
	assert.Equal(t, "length", resp.finishReason())

	assert.NoError(t, json.Unmarshal([]byte(`{"choices":[{"message":{"content":""}}]}`), &resp))
	text, ok := resp.content()
	assert.True(t, ok)
	assert.Empty(t, text)
}
