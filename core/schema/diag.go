package schema

import (
	"fmt"
	"strings"
)

// Severity classifies a validation message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// MessageLocation points at the definition source a message refers to.
type MessageLocation struct {
	File   string `yaml:"file,omitempty"`
	Line   int    `yaml:"line,omitempty"`
	Column int    `yaml:"column,omitempty"`
}

func (l MessageLocation) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return l.File
}

// ValidationMessage is a single diagnostic with a severity, a message text
// and an optional source location.
type ValidationMessage struct {
	Severity Severity         `yaml:"severity"`
	Message  string           `yaml:"message"`
	Location *MessageLocation `yaml:"location,omitempty"`
}

// NewError creates an error-severity message.
func NewError(message string, loc *MessageLocation) ValidationMessage {
	return ValidationMessage{Severity: SeverityError, Message: message, Location: loc}
}

// NewWarning creates a warning-severity message.
func NewWarning(message string, loc *MessageLocation) ValidationMessage {
	return ValidationMessage{Severity: SeverityWarning, Message: message, Location: loc}
}

// NewInfo creates an info-severity message.
func NewInfo(message string, loc *MessageLocation) ValidationMessage {
	return ValidationMessage{Severity: SeverityInfo, Message: message, Location: loc}
}

func (m ValidationMessage) String() string {
	if m.Location != nil {
		return fmt.Sprintf("%s: %s (%s)", m.Severity, m.Message, m.Location)
	}
	return fmt.Sprintf("%s: %s", m.Severity, m.Message)
}

// ValidationContext accumulates messages while validating one or more
// components. A single context can be shared across components so callers
// get one pooled, ordered result.
type ValidationContext struct {
	messages []ValidationMessage
}

// NewValidationContext creates an empty context.
func NewValidationContext() *ValidationContext {
	return &ValidationContext{}
}

// Add appends a message built from the given parts.
func (c *ValidationContext) Add(severity Severity, message string, loc *MessageLocation) {
	c.messages = append(c.messages, ValidationMessage{Severity: severity, Message: message, Location: loc})
}

// AddMessage appends an existing message unchanged.
func (c *ValidationContext) AddMessage(msg ValidationMessage) {
	c.messages = append(c.messages, msg)
}

// Result returns the accumulated messages as an immutable result.
func (c *ValidationContext) Result() ValidationResult {
	msgs := make([]ValidationMessage, len(c.messages))
	copy(msgs, c.messages)
	return ValidationResult{messages: msgs}
}

// ValidationResult is an immutable, ordered list of diagnostics.
// Expected schema errors are reported here, never thrown as control flow.
type ValidationResult struct {
	messages []ValidationMessage
}

// Messages returns the diagnostics in the order they were collected.
func (r ValidationResult) Messages() []ValidationMessage {
	msgs := make([]ValidationMessage, len(r.messages))
	copy(msgs, r.messages)
	return msgs
}

// HasErrors reports whether any message has error severity.
func (r ValidationResult) HasErrors() bool {
	for _, m := range r.messages {
		if m.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any message has warning severity.
func (r ValidationResult) HasWarnings() bool {
	for _, m := range r.messages {
		if m.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

func (r ValidationResult) String() string {
	if len(r.messages) == 0 {
		return "ok"
	}
	parts := make([]string, len(r.messages))
	for i, m := range r.messages {
		parts[i] = m.String()
	}
	return strings.Join(parts, "\n")
}
