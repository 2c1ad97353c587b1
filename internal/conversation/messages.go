package conversation

import "fmt"

const greetingMessage = `Hello! Welcome to TalentScout!

I'm your hiring assistant, and I'm here to help with the initial screening for technology positions. This conversation will take about 5-10 minutes.

I'll be asking you some questions about:
- Your background and experience
- Your technical skills
- Some technical questions based on your expertise

Feel free to ask questions at any point. If you need to exit, just type 'exit' or 'goodbye'.

Ready to get started?`

const techStackMessage = `Now, let's talk about your technical skills! Please list your tech stack - including programming languages, frameworks, databases, and tools you're proficient in.

(For example: Python, React, PostgreSQL, Docker, AWS)`

const fallbackMessage = "I'm here to help. How can I assist you?"

func nameMessage(*Session) string {
	return "Great! Let's get started. May I have your full name, please?"
}

func emailMessage(s *Session) string {
	return fmt.Sprintf("Thank you, %s! What's the best email address to reach you?", s.Record.FullName)
}

func phoneMessage(*Session) string {
	return "Perfect! And what's your phone number?"
}

func experienceMessage(*Session) string {
	return "Got it! How many years of professional experience do you have?"
}

func positionMessage(*Session) string {
	return "Excellent! What position(s) are you interested in applying for?"
}

func locationMessage(*Session) string {
	return "Thanks! Where are you currently located?"
}

func stackMessage(*Session) string {
	return techStackMessage
}

func questionMessage(s *Session) string {
	question, ok := s.CurrentQuestion()
	if !ok {
		return "Thank you for answering all the technical questions!"
	}
	return fmt.Sprintf("Technical Question %d/%d:\n\n%s",
		s.QuestionIndex+1, len(s.Questions), question)
}

func closingMessage(s *Session) string {
	name := s.Record.FullName
	if name == "" {
		name = "candidate"
	}
	email := s.Record.Email
	if email == "" {
		email = "your email"
	}

	return fmt.Sprintf(`Thank you so much for your time, %s!

We've collected all the necessary information for the initial screening. Our team will review your responses and get back to you within 3-5 business days at %s.

If you're selected for the next round, we'll reach out to schedule a detailed technical interview.

Best of luck with your application! Have a wonderful day!`, name, email)
}
