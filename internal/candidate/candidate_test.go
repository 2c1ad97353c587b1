package candidate

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	rec := &Record{
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		YearsOfExperience: "3",
		TechStack:         []string{"Python", "Docker"},
	}

	summary := rec.Summary()

	for _, want := range []string{
		"Name: Jane Doe",
		"Email: jane@example.com",
		"Experience: 3 years",
		"Tech Stack: Python, Docker",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}

	if strings.Contains(summary, "Phone") {
		t.Fatalf("summary must skip unset fields:\n%s", summary)
	}
	if strings.HasSuffix(summary, "\n") {
		t.Fatal("summary must not end with a newline")
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	rec := &Record{}
	if !rec.Empty() {
		t.Fatal("fresh record must be empty")
	}

	rec.FullName = "Jane"
	if rec.Empty() {
		t.Fatal("record with a name is not empty")
	}
}
