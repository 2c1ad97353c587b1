// Package conversation drives the scripted screening flow: a fixed stage
// progression that captures one candidate field per turn, asks a generated set
// of technical questions, and persists the finished record on closing.
package conversation

import (
	"strings"

	"go.uber.org/zap"

	"github.com/talentscout/screening-assistant/internal/candidate"
	"github.com/talentscout/screening-assistant/internal/extract"
	"github.com/talentscout/screening-assistant/internal/questions"
)

// Recorder persists a completed screening record. Implementations must be
// safe for use from multiple sessions.
type Recorder interface {
	Save(rec *candidate.Record) (string, error)
}

// Machine executes turns against a Session. One Machine can serve many
// sessions; all per-conversation state lives on the Session itself.
type Machine struct {
	selector      *questions.Selector
	recorder      Recorder
	logger        *zap.Logger
	questionCount int
}

// step describes one row of the stage transition table: how to capture a
// value from the input, where to go when capture succeeds, and the outgoing
// message for the stage.
type step struct {
	capture func(m *Machine, s *Session, input string) bool
	next    Stage
	message func(s *Session) string
}

// New creates a Machine. A count below 1 falls back to the default.
func New(selector *questions.Selector, recorder Recorder, logger *zap.Logger, count int) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if count < 1 {
		count = questions.DefaultCount
	}
	return &Machine{
		selector:      selector,
		recorder:      recorder,
		logger:        logger,
		questionCount: count,
	}
}

// steps is keyed by the stage the input arrives in. The closing stage is
// terminal and deliberately absent: inactive sessions capture nothing.
var steps = map[Stage]step{
	StageGreeting: {
		// The greeting captures no field; it only moves past the welcome.
		capture: func(*Machine, *Session, string) bool { return true },
		next:    StageCollectingName,
		message: func(*Session) string { return greetingMessage },
	},
	StageCollectingName: {
		capture: func(_ *Machine, s *Session, input string) bool {
			name := strings.TrimSpace(input)
			if name == "" {
				return false
			}
			s.Record.FullName = name
			return true
		},
		next:    StageCollectingEmail,
		message: nameMessage,
	},
	StageCollectingEmail: {
		capture: func(_ *Machine, s *Session, input string) bool {
			email, ok := extract.Email(input)
			if !ok {
				return false
			}
			s.Record.Email = email
			return true
		},
		next:    StageCollectingPhone,
		message: emailMessage,
	},
	StageCollectingPhone: {
		capture: func(_ *Machine, s *Session, input string) bool {
			phone, ok := extract.Phone(input)
			if !ok {
				return false
			}
			s.Record.Phone = phone
			return true
		},
		next:    StageCollectingExperience,
		message: phoneMessage,
	},
	StageCollectingExperience: {
		capture: func(_ *Machine, s *Session, input string) bool {
			years, ok := extract.Experience(input)
			if !ok {
				return false
			}
			s.Record.YearsOfExperience = years
			return true
		},
		next:    StageCollectingPosition,
		message: experienceMessage,
	},
	StageCollectingPosition: {
		capture: func(_ *Machine, s *Session, input string) bool {
			position := strings.TrimSpace(input)
			if position == "" {
				return false
			}
			s.Record.DesiredPosition = position
			return true
		},
		next:    StageCollectingLocation,
		message: positionMessage,
	},
	StageCollectingLocation: {
		capture: func(_ *Machine, s *Session, input string) bool {
			location := strings.TrimSpace(input)
			if location == "" {
				return false
			}
			s.Record.CurrentLocation = location
			return true
		},
		next:    StageCollectingTechStack,
		message: locationMessage,
	},
	StageCollectingTechStack: {
		capture: (*Machine).captureTechStack,
		next:    StageAskingTechnicalQuestions,
		message: stackMessage,
	},
	StageAskingTechnicalQuestions: {
		capture: (*Machine).captureAnswer,
		next:    StageClosing,
		message: questionMessage,
	},
	StageClosing: {
		message: closingMessage,
	},
}

// HandleTurn is the single entry point for the UI layer. The very first call
// on a fresh session returns the greeting with the input ignored; afterwards
// each call processes exactly one user turn and returns the next outgoing
// message.
func (m *Machine) HandleTurn(s *Session, input string) string {
	if !s.started {
		s.started = true
		// The greeting only displays the welcome; by the next turn the
		// session is collecting the name.
		s.Stage = StageCollectingName
		s.appendMessage(RoleAssistant, greetingMessage)
		return greetingMessage
	}

	s.appendMessage(RoleUser, input)
	m.process(s, input)

	msg := m.nextMessage(s)
	s.appendMessage(RoleAssistant, msg)
	return msg
}

// process applies the transition rule for the current stage. Exit intent is
// checked before any stage logic, on every turn.
func (m *Machine) process(s *Session, input string) {
	if s.Stage == StageClosing {
		return
	}

	if extract.IsExit(input) {
		m.logger.Debug("exit requested",
			zap.String("session_id", s.ID),
			zap.String("stage", s.Stage.String()),
		)
		m.close(s)
		return
	}

	st, ok := steps[s.Stage]
	if !ok || st.capture == nil {
		return
	}

	if !st.capture(m, s, input) {
		// Failed capture re-prompts implicitly by staying in stage.
		return
	}

	s.Stage = st.next
	if s.Stage == StageClosing {
		m.close(s)
	}
}

// nextMessage produces the outgoing message for the session's current stage
// without mutating any state.
func (m *Machine) nextMessage(s *Session) string {
	st, ok := steps[s.Stage]
	if !ok || st.message == nil {
		return fallbackMessage
	}
	return st.message(s)
}

func (m *Machine) captureTechStack(s *Session, input string) bool {
	stack := extract.SplitTechStack(input)
	if len(stack) == 0 {
		return false
	}

	s.Record.TechStack = stack
	s.Questions = m.selector.Generate(stack, m.questionCount)
	s.QuestionIndex = 0

	recognized := 0
	for _, tech := range stack {
		if questions.Known(tech) {
			recognized++
		}
	}
	m.logger.Debug("technical questions generated",
		zap.String("session_id", s.ID),
		zap.Int("stack_size", len(stack)),
		zap.Int("recognized", recognized),
		zap.Int("questions", len(s.Questions)),
	)

	return true
}

// captureAnswer records the answer to the current question and reports
// whether the question sequence is exhausted.
func (m *Machine) captureAnswer(s *Session, input string) bool {
	question, ok := s.CurrentQuestion()
	if !ok {
		return true
	}

	s.Record.TechnicalResponses = append(s.Record.TechnicalResponses, candidate.Response{
		Question: question,
		Answer:   input,
	})
	s.QuestionIndex++

	return s.QuestionIndex >= len(s.Questions)
}

// close deactivates the session and persists the record exactly once. A save
// failure is surfaced in the log but never interrupts the closing message.
func (m *Machine) close(s *Session) {
	s.Stage = StageClosing
	s.Active = false

	if s.persisted {
		return
	}
	s.persisted = true

	if m.recorder == nil {
		return
	}

	id, err := m.recorder.Save(&s.Record)
	if err != nil {
		m.logger.Warn("saving candidate record failed",
			zap.String("session_id", s.ID),
			zap.Error(err),
		)
		return
	}

	m.logger.Info("screening completed",
		zap.String("session_id", s.ID),
		zap.String("candidate_id", id),
		zap.Int("answers", len(s.Record.TechnicalResponses)),
	)
}
