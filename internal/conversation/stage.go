package conversation

// Stage is a named step in the fixed screening progression. Stages advance in
// declaration order and are never revisited once left, except
// StageAskingTechnicalQuestions which self-loops once per question.
type Stage int

const (
	StageGreeting Stage = iota
	StageCollectingName
	StageCollectingEmail
	StageCollectingPhone
	StageCollectingExperience
	StageCollectingPosition
	StageCollectingLocation
	StageCollectingTechStack
	StageAskingTechnicalQuestions
	StageClosing
)

var stageNames = map[Stage]string{
	StageGreeting:                 "greeting",
	StageCollectingName:           "collecting_name",
	StageCollectingEmail:          "collecting_email",
	StageCollectingPhone:          "collecting_phone",
	StageCollectingExperience:     "collecting_experience",
	StageCollectingPosition:       "collecting_position",
	StageCollectingLocation:       "collecting_location",
	StageCollectingTechStack:      "collecting_tech_stack",
	StageAskingTechnicalQuestions: "asking_technical_questions",
	StageClosing:                  "closing",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
