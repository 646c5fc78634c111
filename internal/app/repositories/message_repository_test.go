package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iiuc/alumnihub/internal/app/repositories"
	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
)

func TestSendAndListConversation(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	first, err := repos.Messages.Send(ctx, repositories.SendMessageInput{
		ConversationID: "conv_1",
		SenderID:       "user_1",
		SenderName:     "Tanvir",
		Content:        "Hey, thanks for accepting!",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if first.Read {
		t.Fatal("a fresh message must start unread")
	}

	time.Sleep(2 * time.Millisecond)
	if _, err := repos.Messages.Send(ctx, repositories.SendMessageInput{
		ConversationID: "conv_1", SenderID: "alumni_1", SenderName: "Nusrat", Content: "Happy to help.",
	}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := repos.Messages.Send(ctx, repositories.SendMessageInput{
		ConversationID: "conv_2", SenderID: "user_1", SenderName: "Tanvir", Content: "other thread",
	}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	conversation, err := repos.Messages.ListConversation(ctx, "conv_1")
	if err != nil {
		t.Fatalf("ListConversation: %v", err)
	}
	if len(conversation) != 2 {
		t.Fatalf("expected 2 messages in conv_1, got %d", len(conversation))
	}
	if conversation[0].ID != first.ID {
		t.Fatal("conversation must read oldest first")
	}
	for i := 1; i < len(conversation); i++ {
		if conversation[i-1].Timestamp > conversation[i].Timestamp {
			t.Fatalf("conversation not chronological at index %d", i)
		}
	}
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	incoming, err := repos.Messages.Send(ctx, repositories.SendMessageInput{
		ConversationID: "conv_1", SenderID: "alumni_1", SenderName: "Nusrat", Content: "ping",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := repos.Messages.Send(ctx, repositories.SendMessageInput{
		ConversationID: "conv_1", SenderID: "alumni_1", SenderName: "Nusrat", Content: "ping again",
	}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	// Own messages never count as unread for their sender
	if _, err := repos.Messages.Send(ctx, repositories.SendMessageInput{
		ConversationID: "conv_1", SenderID: "user_1", SenderName: "Tanvir", Content: "pong",
	}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	count, err := repos.Messages.UnreadCount(ctx, "conv_1", "user_1")
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread for user_1, got %d", count)
	}

	marked, err := repos.Messages.MarkRead(ctx, incoming.ID)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !marked.Read {
		t.Fatal("expected message flagged read")
	}

	count, err = repos.Messages.UnreadCount(ctx, "conv_1", "user_1")
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 unread after MarkRead, got %d", count)
	}
}

func TestMarkRead_MissingID(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	_, err := repos.Messages.MarkRead(ctx, "message_missing")
	if !errors.Is(err, apperrors.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}
