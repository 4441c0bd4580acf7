package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/24KD1A0503/jn/internal/models"
)

// SessionHolder keeps the logged-in session in a JSON file so it outlives
// the process, the way a browser keeps it in local storage.
type SessionHolder struct {
	mu   sync.Mutex
	path string
}

func NewSessionHolder(path string) *SessionHolder {
	return &SessionHolder{path: path}
}

func (s *SessionHolder) Path() string { return s.path }

// OnLoginSuccess replaces any stored session.
func (s *SessionHolder) OnLoginSuccess(sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Current returns the stored session. A missing, unreadable or corrupt
// file reads as "nobody is logged in".
func (s *SessionHolder) Current() (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil || len(b) == 0 {
		return nil, false
	}
	var sess models.Session
	if err := json.Unmarshal(b, &sess); err != nil || sess.User.Username == "" {
		return nil, false
	}
	return &sess, true
}

func (s *SessionHolder) CurrentUser() (*models.User, bool) {
	sess, ok := s.Current()
	if !ok {
		return nil, false
	}
	return &sess.User, true
}

// Logout forgets the stored session. Logging out twice is not an error.
func (s *SessionHolder) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
