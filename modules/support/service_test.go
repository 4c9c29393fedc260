package support

import (
	"context"
	"testing"
	"time"
)

func TestService_FAQs(t *testing.T) {
	service := NewService(0)

	list := service.FAQs()
	if len(list) != 6 {
		t.Fatalf("expected 6 FAQs, got %d", len(list))
	}
	if list[0].Question != "What are your shipping options?" {
		t.Errorf("unexpected first question: %q", list[0].Question)
	}
}

func TestService_Answer_ExactQuestionMatch(t *testing.T) {
	service := NewService(0)

	reply, err := service.Answer(context.Background(), "What is the return policy?")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !reply.Matched {
		t.Fatal("expected a match")
	}
	if reply.FAQID != 3 {
		t.Errorf("FAQID = %d, want 3", reply.FAQID)
	}
}

func TestService_Answer_KeywordMatch(t *testing.T) {
	service := NewService(0)

	tests := []struct {
		text   string
		wantID int
	}{
		{"how long does shipping take", 1},
		{"can I track my package", 2},
		{"I want a refund", 3},
		{"do you install the cameras for me", 4},
		{"is there a warranty on this", 5},
	}

	for _, tt := range tests {
		reply, err := service.Answer(context.Background(), tt.text)
		if err != nil {
			t.Fatalf("Answer(%q) error = %v", tt.text, err)
		}
		if !reply.Matched || reply.FAQID != tt.wantID {
			t.Errorf("Answer(%q) matched=%v id=%d, want id %d", tt.text, reply.Matched, reply.FAQID, tt.wantID)
		}
	}
}

func TestService_Answer_Fallback(t *testing.T) {
	service := NewService(0)

	for _, text := range []string{"do you sell drones", "", "   "} {
		reply, err := service.Answer(context.Background(), text)
		if err != nil {
			t.Fatalf("Answer(%q) error = %v", text, err)
		}
		if reply.Matched {
			t.Errorf("Answer(%q) unexpectedly matched FAQ %d", text, reply.FAQID)
		}
		if reply.Text != Fallback {
			t.Errorf("Answer(%q) = %q, want fallback", text, reply.Text)
		}
	}
}

func TestService_Answer_TypingDelayCancellable(t *testing.T) {
	service := NewService(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := service.Answer(ctx, "anything"); err == nil {
		t.Error("expected cancelled context to abort the typing delay")
	}
}
