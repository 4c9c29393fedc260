package support

import (
	"context"
	"strings"
	"time"
)

// Scripted bot replies.
const (
	// Greeting is sent when a chat session opens.
	Greeting = "Hello! How can I help you today? Please select a question below or type your own."
	// Fallback is sent when no FAQ matches the question.
	Fallback = "Thank you for your question. For a detailed answer, please connect with one of our human agents."
	// FollowUp is sent after an answer to invite the next question.
	FollowUp = "What else can I help you with?"
)

// FAQ is one canned question/answer pair.
type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Reply is the bot's response to a visitor message.
type Reply struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
	FAQID   int    `json:"faq_id,omitempty"`
}

var faqs = []FAQ{
	{ID: 1, Question: "What are your shipping options?", Answer: "We offer free standard shipping on all orders. Express shipping is available for an additional $15."},
	{ID: 2, Question: "How do I track my order?", Answer: "You can track your order using the 'Track Order' link in the main menu. You will need your order ID, which was sent to your email."},
	{ID: 3, Question: "What is the return policy?", Answer: "We have a 30-day return policy for unopened products. Please contact support to initiate a return process. Products must be unopened and in original packaging."},
	{ID: 4, Question: "Do you offer professional installation?", Answer: "Yes! We offer professional installation with our 'Pro' and 'Enterprise' plans. You can also add it as a service during checkout for other products."},
	{ID: 5, Question: "What is the product warranty?", Answer: "Most of our products come with a 1-year manufacturer's warranty. Please check the product description for specific warranty details."},
	{ID: 6, Question: "Do you offer technical support?", Answer: "Yes, we offer technical support via email and phone. Please visit our 'Contact Us' page for details."},
}

// Keywords that map free-text questions onto an FAQ when the text is not
// an exact question match.
var faqKeywords = map[int][]string{
	1: {"shipping", "ship", "delivery"},
	2: {"track", "tracking"},
	3: {"return", "refund"},
	4: {"install", "installation"},
	5: {"warranty", "guarantee"},
	6: {"support", "technical", "help"},
}

// Service answers visitor questions from the FAQ script. A typing delay
// simulates the bot composing its reply.
type Service struct {
	typingDelay time.Duration
}

// NewService creates a new support service.
func NewService(typingDelay time.Duration) *Service {
	return &Service{typingDelay: typingDelay}
}

// FAQs returns the scripted question list.
func (s *Service) FAQs() []FAQ {
	out := make([]FAQ, len(faqs))
	copy(out, faqs)
	return out
}

// Answer matches a visitor message against the FAQ script and returns the
// bot reply after the typing delay. The delay is cut short if the context
// is cancelled.
func (s *Service) Answer(ctx context.Context, text string) (*Reply, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	normalized := normalize(text)
	if normalized == "" {
		return &Reply{Text: Fallback}, nil
	}

	for _, faq := range faqs {
		if normalize(faq.Question) == normalized {
			return &Reply{Text: faq.Answer, Matched: true, FAQID: faq.ID}, nil
		}
	}

	for _, faq := range faqs {
		for _, kw := range faqKeywords[faq.ID] {
			if strings.Contains(normalized, kw) {
				return &Reply{Text: faq.Answer, Matched: true, FAQID: faq.ID}, nil
			}
		}
	}

	return &Reply{Text: Fallback}, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.typingDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.typingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return strings.Trim(text, "?!. ")
}
