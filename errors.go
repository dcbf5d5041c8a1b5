package tossicat

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownParticle = errors.New("unknown particle")
	ErrTemplateSyntax  = errors.New("template syntax error")
)

// InvalidInputError reports a word whose final sound cannot be determined.
type InvalidInputError struct {
	Word   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid word %q: %s", e.Word, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnknownParticleError reports a particle outside the supported table.
type UnknownParticleError struct {
	Spec string
}

func (e *UnknownParticleError) Error() string {
	return fmt.Sprintf("unknown particle %q", e.Spec)
}

func (e *UnknownParticleError) Is(target error) bool {
	return target == ErrUnknownParticle
}

// TemplateSyntaxError reports a malformed placeholder. Start and End are byte
// offsets of the offending span in Template.
type TemplateSyntaxError struct {
	Template string
	Start    int
	End      int
	Reason   string
}

func (e *TemplateSyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at %d:%d %q: %s", e.Start, e.End, e.Span(), e.Reason)
}

func (e *TemplateSyntaxError) Is(target error) bool {
	return target == ErrTemplateSyntax
}

// Span returns the offending part of the template.
func (e *TemplateSyntaxError) Span() string {
	if e.Start < 0 || e.End > len(e.Template) || e.Start > e.End {
		return ""
	}
	return e.Template[e.Start:e.End]
}
