package extract

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{
			name:   "plain address",
			input:  "jane@example.com",
			expect: "jane@example.com",
			found:  true,
		},
		{
			name:   "embedded in sentence with plus and subdomains",
			input:  "reach me at jane.doe+hr@mail.example.co.uk!",
			expect: "jane.doe+hr@mail.example.co.uk",
			found:  true,
		},
		{
			name:  "missing tld",
			input: "jane@example",
		},
		{
			name:  "missing local part",
			input: "@example.com",
		},
		{
			name:  "no address at all",
			input: "not an email",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Email(tt.input)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{
			name:   "hyphenated",
			input:  "555-123-4567",
			expect: "555-123-4567",
			found:  true,
		},
		{
			name:   "dotted inside a sentence",
			input:  "my number is 555.123.4567, thanks",
			expect: "555.123.4567",
			found:  true,
		},
		{
			// The pattern is deliberately loose; the opening parenthesis is
			// dropped because of the leading word boundary.
			name:   "parenthesized area code",
			input:  "(555) 123-4567",
			expect: "555) 123-4567",
			found:  true,
		},
		{
			name:   "bare digit run",
			input:  "call 5551234567",
			expect: "5551234567",
			found:  true,
		},
		{
			name:  "no digits",
			input: "no digits here",
		},
		{
			name:  "digit run too long",
			input: "12345678901234",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Phone(tt.input)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{name: "integer years", input: "3 years", expect: "3", found: true},
		{name: "decimal yrs", input: "I have 2.5 yrs of experience", expect: "2.5", found: true},
		{name: "range", input: "2-3 years", expect: "2-3", found: true},
		{name: "case insensitive", input: "It's been 10 Years now", expect: "10", found: true},
		{name: "fallback to bare digits", input: "around 7", expect: "7", found: true},
		{name: "words only", input: "ten years"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Experience(tt.input)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestSplitTechStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "mixed separators",
			input:  "Python, React; Docker and AWS",
			expect: []string{"Python", "React", "Docker", "AWS"},
		},
		{
			name:   "embedded and is not a separator",
			input:  "Android, Golang",
			expect: []string{"Android", "Golang"},
		},
		{
			name:   "single item",
			input:  "Python",
			expect: []string{"Python"},
		},
		{
			name:   "only separators",
			input:  " and ",
			expect: []string{},
		},
		{
			name:   "empty input",
			input:  "",
			expect: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitTechStack(tt.input)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestIsExit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{name: "bare keyword", input: "exit", expect: true},
		{name: "mixed case inside sentence", input: "I want to QUIT now", expect: true},
		{name: "two word keyword", input: "end chat please", expect: true},
		{name: "goodbye with punctuation", input: "goodbye!", expect: true},
		{name: "substring match is intentional", input: "nonstop delivery", expect: true},
		{name: "ordinary answer", input: "Jane Doe", expect: false},
		{name: "empty", input: "", expect: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsExit(tt.input); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
