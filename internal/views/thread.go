package views

import (
	"context"
	"fmt"
	"sort"
)

// clockLayout renders the time-of-day label shown beside each message.
const clockLayout = "3:04 PM"

// GetConversationThread assembles the full message thread of a conversation
// in chronological order, annotated with sender display names and a flag for
// messages sent by the requesting user. A conversation with zero messages
// reports ErrNotFound, which is distinct from a store failure.
func (e *Engine) GetConversationThread(ctx context.Context, conversationID, userID string) ([]MessageView, error) {
	if conversationID == "" {
		return nil, fmt.Errorf("%w: empty conversation id", ErrInvalidInput)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}

	messages, err := e.store.Messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, storeErr("fetch thread messages", err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: conversation %s has no messages", ErrNotFound, conversationID)
	}

	// Oldest first; a stable sort keeps insertion order for equal timestamps.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SentAt.Before(messages[j].SentAt)
	})

	senderIDs := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, m := range messages {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			senderIDs = append(senderIDs, m.SenderID)
		}
	}
	senders, err := e.lookupUsers(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	thread := make([]MessageView, len(messages))
	for i, m := range messages {
		name := UnknownUser
		if u, ok := senders[m.SenderID]; ok {
			name = u.DisplayName()
		}
		thread[i] = MessageView{
			ID:         m.ID.Hex(),
			Content:    m.Content,
			Time:       m.SentAt.Format(clockLayout),
			Mine:       m.SenderID == userID,
			SenderName: name,
		}
	}
	return thread, nil
}
