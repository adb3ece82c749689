// Package chat wraps the analysis engine in a conversational session: it
// keeps the message transcript, stamps messages with IDs and timestamps, and
// guards against overlapping analysis requests. All non-determinism (IDs,
// clocks) lives here so the engine below stays a pure function.
package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RishiRohanKalapala/medica/internal/medica/analyze"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrBusy is returned when Send is called while a previous analysis is still
// outstanding. It is transient: the caller should retry after the in-flight
// request completes.
var ErrBusy = errors.New("analysis already in progress")

const welcomeText = "Hello! I'm MediSpecialist AI, specialized in lung cancer, thyroid disorders, and cardiovascular disease. " +
	"Describe your symptoms or medication inquiries, and I'll help analyze possible conditions and suggest relevant medications.\n\n" +
	"Remember, this is for educational purposes only and should not replace professional medical or pharmaceutical advice."

// Session is a single-user chat conversation over one analyzer. It is safe
// for concurrent use; overlapping Send calls beyond the first fail with
// ErrBusy rather than queueing.
type Session struct {
	analyzer *analyze.Analyzer

	mu       sync.Mutex
	busy     bool
	messages []Message

	now func() time.Time
}

// NewSession starts a session seeded with the assistant welcome message.
func NewSession(analyzer *analyze.Analyzer) *Session {
	s := &Session{
		analyzer: analyzer,
		now:      time.Now,
	}
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   welcomeText,
		Timestamp: s.now(),
	})
	return s
}

// Messages returns a snapshot of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Send records the user message, runs the analysis, and appends the rendered
// assistant response. The returned message is the assistant reply. While one
// Send is in flight any further Send fails fast with ErrBusy.
func (s *Session) Send(content string) (Message, analyze.Result, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		logger.L().Warnw("Rejecting chat message, analysis in progress")
		return Message{}, analyze.Result{}, ErrBusy
	}
	s.busy = true
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: s.now(),
	})
	s.mu.Unlock()

	// Analysis runs outside the lock so Messages stays responsive.
	result := s.analyzer.Analyze(content)
	reply := Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   renderResponse(s.analyzer, content, result),
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.busy = false
	s.mu.Unlock()

	return reply, result, nil
}
