package conversation

import (
	"github.com/google/uuid"

	"github.com/talentscout/screening-assistant/internal/candidate"
)

// Role identifies who produced a transcript message.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Message is a single transcript turn.
type Message struct {
	Role    Role
	Content string
}

// Session holds all transient state for one active conversation. It is owned
// by a single caller, created fresh per conversation and never persisted or
// shared between conversations.
type Session struct {
	ID     string
	Stage  Stage
	Record candidate.Record

	// Questions is generated exactly once when the tech stack is captured
	// and is fixed thereafter. QuestionIndex tracks the next unanswered one.
	Questions     []string
	QuestionIndex int

	Active     bool
	Transcript []Message

	started   bool
	persisted bool
}

// NewSession creates a fresh session at the greeting stage.
func NewSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		Stage:  StageGreeting,
		Active: true,
	}
}

func (s *Session) appendMessage(role Role, content string) {
	s.Transcript = append(s.Transcript, Message{Role: role, Content: content})
}

// CurrentQuestion returns the question awaiting an answer, if any.
func (s *Session) CurrentQuestion() (string, bool) {
	if s.QuestionIndex < len(s.Questions) {
		return s.Questions[s.QuestionIndex], true
	}
	return "", false
}
