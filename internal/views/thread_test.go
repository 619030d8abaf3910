package views

import (
	"context"
	"errors"
	"testing"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
)

func TestGetConversationThreadInvalidInput(t *testing.T) {
	e := newTestEngine(&fakeStore{})
	if _, err := e.GetConversationThread(context.Background(), "", "u1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty conversation id: expected ErrInvalidInput, got %v", err)
	}
	if _, err := e.GetConversationThread(context.Background(), "c1", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty user id: expected ErrInvalidInput, got %v", err)
	}
}

func TestGetConversationThreadEmptyIsNotFound(t *testing.T) {
	e := newTestEngine(&fakeStore{})
	_, err := e.GetConversationThread(context.Background(), "c1", "u1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("zero messages must report ErrNotFound, got %v", err)
	}
}

func TestGetConversationThreadChronologicalOrder(t *testing.T) {
	store := &fakeStore{
		users: []models.User{
			{ID: "u1", FirstName: "Mina", LastName: "Khan"},
			{ID: "u2", FirstName: "Omar", LastName: "Faruk"},
		},
		messages: []models.Message{
			msg("c1", "u2", "second", at(10, 5)),
			msg("c1", "u1", "first", at(10, 0)),
			msg("c1", "u2", "third", at(10, 30)),
			msg("c2", "u1", "other thread", at(7, 0)),
		},
	}
	e := newTestEngine(store)

	thread, err := e.GetConversationThread(context.Background(), "c1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(thread) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(thread))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if thread[i].Content != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, thread[i].Content)
		}
	}
	if !thread[0].Mine || thread[1].Mine {
		t.Fatalf("mine flags wrong: %+v", thread)
	}
	if thread[1].SenderName != "Omar Faruk" {
		t.Fatalf("expected sender name, got %q", thread[1].SenderName)
	}
}

func TestGetConversationThreadClockLabel(t *testing.T) {
	store := &fakeStore{
		users:    []models.User{{ID: "u1", FirstName: "A"}},
		messages: []models.Message{msg("c1", "u1", "hey", at(14, 5))},
	}
	e := newTestEngine(store)

	thread, err := e.GetConversationThread(context.Background(), "c1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if thread[0].Time != "2:05 PM" {
		t.Fatalf("expected 12-hour clock label, got %q", thread[0].Time)
	}
}

func TestGetConversationThreadUnknownSender(t *testing.T) {
	store := &fakeStore{
		messages: []models.Message{msg("c1", "deleted-user", "hello?", at(9, 0))},
	}
	e := newTestEngine(store)

	thread, err := e.GetConversationThread(context.Background(), "c1", "u1")
	if err != nil {
		t.Fatalf("missing sender profile must not fail the thread, got %v", err)
	}
	if thread[0].SenderName != UnknownUser {
		t.Fatalf("expected %q, got %q", UnknownUser, thread[0].SenderName)
	}
}

func TestGetConversationThreadStoreFailure(t *testing.T) {
	store := &fakeStore{
		messages: []models.Message{msg("c1", "u1", "hi", at(9, 0))},
		failOn:   "messages",
	}
	e := newTestEngine(store)

	_, err := e.GetConversationThread(context.Background(), "c1", "u1")
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("a store failure must not be reported as not-found")
	}
}
