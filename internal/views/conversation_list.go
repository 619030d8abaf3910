package views

import (
	"context"
	"fmt"
	"sort"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
)

// parties splits a conversation into the calling side and the counterpart.
// A conversation that does not include the caller at all is corrupt data;
// the counterpart stays empty and later resolves to UnknownUser.
type parties struct {
	self  string
	other string
}

func splitParties(c models.Conversation, userID string) parties {
	switch userID {
	case c.UserID1:
		return parties{self: c.UserID1, other: c.UserID2}
	case c.UserID2:
		return parties{self: c.UserID2, other: c.UserID1}
	}
	return parties{self: userID}
}

// GetConversationList assembles the display-ready conversation list for a
// user: each conversation with the counterpart's display info and the text of
// its latest message. A user with no conversations gets an empty list, not an
// error. Rows are ordered by the conversation's own LastMessageAt, newest
// first.
func (e *Engine) GetConversationList(ctx context.Context, userID string) ([]ConversationView, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}

	conversations, err := e.store.Conversations.ListForUser(ctx, userID)
	if err != nil {
		return nil, storeErr("fetch conversations", err)
	}
	if len(conversations) == 0 {
		return []ConversationView{}, nil
	}

	conversationIDs := make([]string, len(conversations))
	for i, c := range conversations {
		conversationIDs[i] = c.ID
	}
	messages, err := e.store.Messages.ListByConversationIDs(ctx, conversationIDs)
	if err != nil {
		return nil, storeErr("fetch latest messages", err)
	}

	// One pass over the batch: keep the newest message per conversation.
	latest := make(map[string]models.Message)
	for _, m := range messages {
		cur, ok := latest[m.ConversationID]
		if !ok || m.SentAt.After(cur.SentAt) {
			latest[m.ConversationID] = m
		}
	}

	pairs := make([]parties, len(conversations))
	otherIDs := make([]string, 0, len(conversations))
	seenOther := make(map[string]bool)
	for i, c := range conversations {
		pairs[i] = splitParties(c, userID)
		if id := pairs[i].other; id != "" && !seenOther[id] {
			seenOther[id] = true
			otherIDs = append(otherIDs, id)
		}
	}

	users, err := e.lookupUsers(ctx, otherIDs)
	if err != nil {
		return nil, err
	}

	list := make([]ConversationView, len(conversations))
	for i, c := range conversations {
		view := ConversationView{
			ID:             c.ID,
			OtherPartyID:   pairs[i].other,
			OtherPartyName: UnknownUser,
			LastMessageAt:  c.LastMessageAt,
		}
		if m, ok := latest[c.ID]; ok {
			view.LastMessage = m.Content
		}
		if u, ok := users[pairs[i].other]; ok {
			view.OtherPartyName = u.DisplayName()
			view.OtherPartyAvatar = u.AvatarURL
		}
		list[i] = view
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].LastMessageAt.After(list[j].LastMessageAt)
	})
	return list, nil
}

// lookupUsers batch-fetches user rows and indexes them by id. Ids with no
// matching row are simply absent from the map; callers substitute defaults.
func (e *Engine) lookupUsers(ctx context.Context, ids []string) (map[string]models.User, error) {
	if len(ids) == 0 {
		return map[string]models.User{}, nil
	}
	users, err := e.store.Users.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, storeErr("fetch user profiles", err)
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}
