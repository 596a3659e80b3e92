package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/newsdigest"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultRecycleAfter is how many pages a browser serves before the session
// replaces it. Chrome's memory only grows over a long batch.
const DefaultRecycleAfter = 75

// chrome is one launched browser process.
type chrome struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func launchChrome() (*chrome, error) {
	// Articles are read as text, so images are never loaded.
	l := launcher.New().
		Set("blink-settings", "imagesEnabled=false").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &chrome{browser: browser, launcher: l}, nil
}

func (c *chrome) shutdown() error {
	err := c.browser.Close()
	c.launcher.Kill()
	return err
}

// Session hands out browser tabs and swaps in a fresh browser once the
// current one has served its quota of pages.
//
// Session is safe for concurrent use.
type Session struct {
	mu           sync.Mutex
	current      *chrome
	served       int64
	recycleAfter int64
}

// NewSession launches a headless Chrome browser. A recycleAfter below 1
// means DefaultRecycleAfter. Close must be called when the Session is no
// longer needed.
func NewSession(recycleAfter int64) (*Session, error) {
	if recycleAfter < 1 {
		recycleAfter = DefaultRecycleAfter
	}

	c, err := launchChrome()
	if err != nil {
		return nil, err
	}

	return &Session{current: c, recycleAfter: recycleAfter}, nil
}

// Page opens a blank tab. The caller must close it.
// Returns EINVALID once the session is closed.
func (s *Session) Page() (*rod.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "browser session is closed")
	}
	if s.served >= s.recycleAfter {
		s.recycle()
	}

	page, err := s.current.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	s.served++
	return page, nil
}

// recycle replaces the current browser. When a new browser cannot be
// launched the old one stays in service. Must be called with mu held.
func (s *Session) recycle() {
	fresh, err := launchChrome()
	if err != nil {
		return
	}
	_ = s.current.shutdown()
	s.current = fresh
	s.served = 0
}

// Browser returns the browser currently in service, or nil once closed.
func (s *Session) Browser() *rod.Browser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.browser
}

// LauncherPID returns the process ID of the current browser launcher, or 0
// once closed.
func (s *Session) LauncherPID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0
	}
	return s.current.launcher.PID()
}

// Close shuts the browser down. Close is safe to call multiple times.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	err := s.current.shutdown()
	s.current = nil
	return err
}
