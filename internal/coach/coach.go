package coach

import (
	"context"

	"github.com/julianstephens/lifelog-cli/internal/models"
	"github.com/julianstephens/lifelog-cli/internal/remote"
)

// FallbackText is appended when no reply can be generated (offline, guest
// mode, or a remote failure)
const FallbackText = "Sorry, I'm having trouble connecting right now. Please try again later."

// EmptyReplyText covers the degenerate case of a successful call that came
// back without any content
const EmptyReplyText = "I'm sorry, I couldn't generate a response. Please try again."

// Reply is one generated coach turn plus the canonical ids the remote
// store assigned to the conversation
type Reply struct {
	Text      string
	MessageID models.ID // canonical id for the user's turn
	ReplyID   models.ID // canonical id for the generated turn
}

// Replier produces a coach reply for a new user message given the prior
// conversation. Implementations may call out to the remote generator or
// answer locally.
type Replier interface {
	Reply(ctx context.Context, history []models.ChatMessage, msg models.ChatMessage) (Reply, error)
}

// Remote generates replies through the remote store's chat endpoint
type Remote struct {
	gateway remote.Gateway
}

func NewRemote(gateway remote.Gateway) *Remote {
	return &Remote{gateway: gateway}
}

func (r *Remote) Reply(ctx context.Context, history []models.ChatMessage, msg models.ChatMessage) (Reply, error) {
	res, err := r.gateway.SendChat(ctx, msg)
	if err != nil {
		return Reply{}, err
	}

	text := res.Reply
	if text == "" {
		text = EmptyReplyText
	}
	return Reply{
		Text:      text,
		MessageID: res.MessageID,
		ReplyID:   res.ReplyID,
	}, nil
}

// Canned answers locally with the fixed fallback copy. It serves guest and
// offline sessions where no generator is reachable.
type Canned struct{}

func (Canned) Reply(ctx context.Context, history []models.ChatMessage, msg models.ChatMessage) (Reply, error) {
	return Reply{
		Text:      FallbackText,
		MessageID: msg.ID,
		ReplyID:   models.NewLocalID(),
	}, nil
}
