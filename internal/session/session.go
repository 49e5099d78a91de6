// Package session keeps track of who is currently acting on the store.
// It performs no authentication; whoever constructs it decides the actor.
package session

import (
	"fmt"
	"sync/atomic"

	"github.com/erazemk/shramba/internal/model"
)

// Session holds the current actor. The zero value has nobody signed in.
type Session struct {
	current atomic.Pointer[model.Actor]
}

// New returns a session with actor signed in.
func New(actor model.Actor) (*Session, error) {
	s := &Session{}
	if err := s.Set(actor); err != nil {
		return nil, err
	}
	return s, nil
}

// Set replaces the current actor.
func (s *Session) Set(actor model.Actor) error {
	if actor.Name == "" {
		return fmt.Errorf("actor name required")
	}
	if !model.ValidRole(actor.Role) {
		return fmt.Errorf("unknown role %q", actor.Role)
	}
	s.current.Store(&actor)
	return nil
}

// Clear signs the current actor out.
func (s *Session) Clear() {
	s.current.Store(nil)
}

// Current returns a copy of the current actor, or nil if nobody is signed in.
func (s *Session) Current() *model.Actor {
	a := s.current.Load()
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

// Can reports whether the current actor has at least the given role.
func (s *Session) Can(minimum string) bool {
	a := s.current.Load()
	return a != nil && model.RoleAtLeast(a.Role, minimum)
}
