package watch

import (
	"errors"
	"io/fs"
	"sync"
	"time"
)

const MinInterval = time.Millisecond * 20

var (
	ErrClosed  = errors.New("poller is closed")
	ErrRunning = errors.New("poller is already running")
)

// snapshot is what the poller compares between scans
type snapshot struct {
	exists  bool
	modTime time.Time
	size    int64
}

func stat(fsys fs.FS, name string) (snapshot, error) {
	fi, err := fs.Stat(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snapshot{}, nil
		}
		return snapshot{}, err
	}
	return snapshot{exists: true, modTime: fi.ModTime(), size: fi.Size()}, nil
}

// Poller watches documents by polling their file info
type Poller struct {
	fsys fs.FS
	// watched documents and their state after the last scan
	docs     map[string]snapshot
	events   chan Event
	errors   chan error
	done     chan struct{}
	scanDone chan struct{}
	running  bool

	mu     sync.Mutex
	closed bool
}

func NewPoller(fsys fs.FS) *Poller {
	return &Poller{
		fsys:     fsys,
		docs:     map[string]snapshot{},
		events:   make(chan Event),
		errors:   make(chan error),
		done:     make(chan struct{}),
		scanDone: make(chan struct{}),
	}
}

// Add starts watching name. A document that doesn't exist yet is
// reported with a Create event once it appears.
func (p *Poller) Add(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	s, err := stat(p.fsys, name)
	if err != nil {
		return err
	}
	p.docs[name] = s
	return nil
}

func (p *Poller) Remove(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.docs, name)
}

// Start polls every interval until Close is called
func (p *Poller) Start(interval time.Duration) error {
	if interval < MinInterval {
		interval = MinInterval
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.running {
		p.mu.Unlock()
		return ErrRunning
	}
	p.running = true
	p.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
		case <-p.done:
			return nil
		}

		if !p.scan() {
			return nil
		}
		select {
		case p.scanDone <- struct{}{}:
		default:
		}
	}
}

// scan compares every watched document with its previous state. It
// returns false once the poller is closed.
func (p *Poller) scan() bool {
	p.mu.Lock()
	var (
		changed []Event
		errs    []error
	)
	for name, prev := range p.docs {
		cur, err := stat(p.fsys, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p.docs[name] = cur
		switch {
		case !prev.exists && cur.exists:
			changed = append(changed, Event{Name: name, Op: Create})
		case prev.exists && !cur.exists:
			changed = append(changed, Event{Name: name, Op: Remove})
		case cur.exists && (!cur.modTime.Equal(prev.modTime) || cur.size != prev.size):
			changed = append(changed, Event{Name: name, Op: Write})
		}
	}
	p.mu.Unlock()

	// sent without holding the lock so receivers may call Add or Remove
	for _, err := range errs {
		select {
		case p.errors <- err:
		case <-p.done:
			return false
		}
	}
	for _, e := range changed {
		select {
		case p.events <- e:
		case <-p.done:
			return false
		}
	}
	return true
}

// Close stops a running poller. Closing twice is a no-op.
func (p *Poller) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	close(p.done)
	p.closed = true
	p.running = false
	return nil
}

func (p *Poller) Errors() <-chan error {
	return p.errors
}

func (p *Poller) Events() <-chan Event {
	return p.events
}

// ScanComplete receives after every scan that had a reader waiting
func (p *Poller) ScanComplete() <-chan struct{} {
	return p.scanDone
}
