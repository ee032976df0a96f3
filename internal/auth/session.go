package auth

import "sync"

// Session exposes the current user identity to the state store. Writes
// are silently dropped while no one is signed in, and the store reacts to
// sign-in/sign-out notifications by hydrating or resetting.
type Session interface {
	// CurrentUID returns the signed-in user's id, or ok=false.
	CurrentUID() (uid string, ok bool)
	// OnChange registers a callback fired on every sign-in (signedIn=true)
	// and sign-out (signedIn=false).
	OnChange(fn func(uid string, signedIn bool))
}

// StaticSession is permanently signed in as one uid. The HTTP layer uses
// it: by the time a request reaches a handler the middleware has already
// resolved the user.
type StaticSession string

func (s StaticSession) CurrentUID() (string, bool)             { return string(s), true }
func (s StaticSession) OnChange(func(uid string, signed bool)) {}

// MemorySession is a mutable session with change notification, used by
// single-user deployments and tests.
type MemorySession struct {
	mu        sync.Mutex
	uid       string
	listeners []func(uid string, signedIn bool)
}

func NewMemorySession() *MemorySession {
	return &MemorySession{}
}

func (s *MemorySession) CurrentUID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uid, s.uid != ""
}

func (s *MemorySession) OnChange(fn func(uid string, signedIn bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *MemorySession) SignIn(uid string) {
	s.mu.Lock()
	s.uid = uid
	fns := append([]func(string, bool){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn(uid, true)
	}
}

func (s *MemorySession) SignOut() {
	s.mu.Lock()
	uid := s.uid
	s.uid = ""
	fns := append([]func(string, bool){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn(uid, false)
	}
}
