package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/danialhaz/gigmate/internal/types"
)

// Conversations lists the signed-in user's message threads.
func (c *Client) Conversations(ctx context.Context) ([]types.Conversation, error) {
	var conversations []types.Conversation
	if err := c.do(ctx, http.MethodGet, "/v1/chat/conversations", nil, nil, &conversations, ""); err != nil {
		return nil, err
	}
	return conversations, nil
}

// Messages fetches messages in a conversation. A non-nil afterID requests only
// messages newer than that id, which is what the poller uses for delta refresh.
func (c *Client) Messages(ctx context.Context, conversationID uuid.UUID, afterID *uuid.UUID) ([]types.Message, error) {
	query := url.Values{}
	if afterID != nil {
		query.Set("after", afterID.String())
	}

	var messages []types.Message
	path := "/v1/chat/conversations/" + conversationID.String() + "/messages"
	if err := c.do(ctx, http.MethodGet, path, query, nil, &messages, ""); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage posts a new chat message.
func (c *Client) SendMessage(ctx context.Context, req types.SendMessageRequest) (*types.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, &Error{Kind: KindValidation, Message: "invalid message", Cause: err}
	}

	var msg types.Message
	path := "/v1/chat/conversations/" + req.ConversationID.String() + "/messages"
	if err := c.do(ctx, http.MethodPost, path, nil, req, &msg, ""); err != nil {
		return nil, err
	}
	return &msg, nil
}
