package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/phrazzld/careerforge/internal/generation"
)

// ErrStale is returned by Session.Submit when a newer submission was started
// before this one settled. Its outcome was discarded.
var ErrStale = errors.New("generation superseded by a newer request")

// Outcome is the settled state of one accepted submission.
type Outcome struct {
	ID     uint64
	Result *generation.Result
	Err    error
}

// Session holds the single result slot of one UI session. Submissions are
// fenced by a monotonically increasing id: only the most recently started
// submission may publish, so a slow earlier request can never overwrite a
// newer answer.
type Session struct {
	generator generation.Generator

	mu      sync.Mutex
	latest  uint64
	settled bool
	current *Outcome
}

// NewSession creates a Session that submits through generator.
func NewSession(generator generation.Generator) *Session {
	return &Session{generator: generator, settled: true}
}

// Prepare applies the form checks done before anything is sent: notes and
// role must contain non-whitespace text and tone must be one of the supported
// tones. The returned request keeps notes and role as typed and carries the
// canonical tone spelling.
func Prepare(req generation.Request) (generation.Request, error) {
	if strings.TrimSpace(req.RawNotes) == "" || strings.TrimSpace(req.Role) == "" || req.Tone == "" {
		return req, generation.NewError(generation.KindValidation, generation.MsgMissingFields, nil)
	}

	tone, err := generation.ParseTone(req.Tone)
	if err != nil {
		return req, generation.NewError(generation.KindValidation, err.Error(), nil)
	}
	req.Tone = string(tone)
	return req, nil
}

// Submit validates req, sends it, and publishes the outcome unless a newer
// submission started in the meantime, in which case it returns ErrStale.
// Invalid input is rejected without a request and leaves Current unchanged.
func (s *Session) Submit(ctx context.Context, req generation.Request) (*generation.Result, error) {
	prepared, err := Prepare(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.latest++
	id := s.latest
	s.settled = false
	s.mu.Unlock()

	result, err := s.generator.Generate(ctx, prepared)

	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.latest {
		return nil, ErrStale
	}
	s.settled = true
	s.current = &Outcome{ID: id, Result: result, Err: err}
	return result, err
}

// Current returns the last published outcome, if any.
func (s *Session) Current() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Outcome{}, false
	}
	return *s.current, true
}

// Pending reports whether the most recent submission is still in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.settled
}
