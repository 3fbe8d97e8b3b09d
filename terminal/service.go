package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Service manages screen lifecycle and input polling
type Service struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService wraps screen; a nil screen is created from the environment on Init
func NewService(screen tcell.Screen) *Service {
	return &Service{
		screen:  screen,
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name returns the service name
func (s *Service) Name() string {
	return "terminal"
}

// Init creates and initializes the screen with mouse reporting enabled
func (s *Service) Init() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "create screen")
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	SetCrashScreen(s.screen)
	s.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// Start launches the input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	Go(s.pollLoop)
	return nil
}

func (s *Service) pollLoop() {
	defer close(s.doneCh)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		// nil after Fini
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop signals the poller, waits for it and restores the terminal
func (s *Service) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)

	// Unblocks PollEvent
	s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-s.doneCh

	s.screen.Fini()
	SetCrashScreen(nil)
	return nil
}

// Screen returns the wrapped screen
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}

// EmergencyReset restores a terminal left in application mode by a crash
func EmergencyReset(w io.Writer) {
	io.WriteString(w, oscPointerReset)
	io.WriteString(w, "\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l") // mouse tracking off
	io.WriteString(w, "\x1b[0 q")                                     // default cursor shape
	io.WriteString(w, "\x1b[?25h")                                    // show cursor
	io.WriteString(w, "\x1b[?1049l")                                  // leave alt screen
	io.WriteString(w, "\x1b[0m")

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
