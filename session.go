package secd

import (
	"github.com/rs/zerolog/log"

	"github.com/secdlisp/secd/object"
)

// Session provides stateful reading and compilation for a REPL. All forms
// entered during a session share one arena, so symbols interned by earlier
// input are reused by later input. A Session is not safe for concurrent use.
type Session struct {
	arena *object.Arena
	opts  []Option
	count int
}

// NewSession creates a Session with a fresh arena. The options apply to
// every call to Rep.
func NewSession(opts ...Option) *Session {
	s := &Session{
		arena: object.NewArena(),
		opts:  opts,
	}
	log.Debug().Str("arena", s.arena.ID().String()).Msg("session started")
	return s
}

// Arena returns the arena backing the session.
func (s *Session) Arena() *object.Arena {
	return s.arena
}

// Count returns the number of forms compiled successfully so far.
func (s *Session) Count() int {
	return s.count
}

// Rep reads, compiles, and renders one form of input.
func (s *Session) Rep(input string) (string, error) {
	out, err := Rep(input, s.arena, s.opts...)
	if err != nil {
		return "", err
	}
	s.count++
	return out, nil
}

// Close releases the arena. Handles issued during the session stop
// resolving.
func (s *Session) Close() {
	s.arena.Close()
}
