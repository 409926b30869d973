package scraper

import (
	"fmt"
	"log"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Element is a handle to a DOM node on a live page.
type Element interface {
	Text() (string, error)
}

// Session is one exclusive browser instance with a single page. It is owned
// by exactly one scrape and must be stopped exactly once, whatever happened
// in between.
type Session interface {
	Navigate(url string) error
	Elements(selector string) ([]Element, error)
	Stop() error
}

// Engine launches browser sessions. The production engine starts a fresh
// Chromium process per session; tests substitute a mock.
type Engine interface {
	Launch() (Session, error)
}

// RodEngine launches Chromium through go-rod.
type RodEngine struct{}

// NewRodEngine creates the production browser engine.
func NewRodEngine() *RodEngine {
	return &RodEngine{}
}

// Launch starts a headless browser and opens a blank page. The launch flags
// are fixed: no sandbox, no GPU, no /dev/shm, which keeps Chromium alive on
// constrained and containerized hosts.
func (e *RodEngine) Launch() (Session, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Leakless(false).
		Set("disable-gpu").
		Set("disable-dev-shm-usage")

	// Use system Chromium in Docker, auto-detect locally.
	if _, err := os.Stat("/usr/bin/chromium-browser"); err == nil {
		l = l.Bin("/usr/bin/chromium-browser")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %v", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %v", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		// The browser process is already running, don't leak it.
		if closeErr := browser.Close(); closeErr != nil {
			log.Printf("Error closing browser after page failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to open page: %v", err)
	}

	return &rodSession{browser: browser, page: page}, nil
}

type rodSession struct {
	browser *rod.Browser
	page    *rod.Page
}

func (s *rodSession) Navigate(url string) error {
	return s.page.Navigate(url)
}

func (s *rodSession) Elements(selector string) ([]Element, error) {
	els, err := s.page.Elements(selector)
	if err != nil {
		return nil, err
	}

	handles := make([]Element, len(els))
	for i, el := range els {
		handles[i] = el
	}
	return handles, nil
}

func (s *rodSession) Stop() error {
	return s.browser.Close()
}
