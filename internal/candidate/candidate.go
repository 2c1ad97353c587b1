package candidate

import (
	"fmt"
	"strings"
)

// Record accumulates everything collected from a single candidate during a
// screening conversation. Fields are filled in stage order and are never
// rewritten once set.
type Record struct {
	FullName           string     `json:"full_name,omitempty"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	YearsOfExperience  string     `json:"years_of_experience,omitempty"`
	DesiredPosition    string     `json:"desired_position,omitempty"`
	CurrentLocation    string     `json:"current_location,omitempty"`
	TechStack          []string   `json:"tech_stack"`
	TechnicalResponses []Response `json:"technical_responses"`
}

// Response is a single answered technical question.
type Response struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Empty reports whether nothing has been collected yet.
func (r *Record) Empty() bool {
	return r.FullName == "" && r.Email == "" && r.Phone == "" &&
		r.YearsOfExperience == "" && r.DesiredPosition == "" &&
		r.CurrentLocation == "" && len(r.TechStack) == 0 &&
		len(r.TechnicalResponses) == 0
}

// Summary renders the collected fields as a short human-readable block,
// skipping anything not captured yet.
func (r *Record) Summary() string {
	var b strings.Builder

	write := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}

	write("Name", r.FullName)
	write("Email", r.Email)
	write("Phone", r.Phone)
	if r.YearsOfExperience != "" {
		write("Experience", r.YearsOfExperience+" years")
	}
	write("Position", r.DesiredPosition)
	write("Location", r.CurrentLocation)
	if len(r.TechStack) > 0 {
		write("Tech Stack", strings.Join(r.TechStack, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}
