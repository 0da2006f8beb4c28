// Package ledger keeps the best score and the session history in the score
// store. Reads happen once at startup; writes are queued to a background
// worker so the simulation never waits on the disk and never sees an error.
package ledger

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// DefaultKey is the name the best score is stored under.
const DefaultKey = "bestScore"

// LocalPlayer names the person at the terminal. Their best score uses the
// base key unchanged.
const LocalPlayer = "local"

// RemotePlayer names an SSH user. The prefix keeps remote names apart
// from LocalPlayer and from each other's keys.
func RemotePlayer(user string) string {
	return "ssh:" + user
}

// queueSize bounds pending writes. Further writes are dropped with a warning.
const queueSize = 64

type opKind int

const (
	opSave opKind = iota
	opReset
	opRecord
)

type op struct {
	kind  opKind
	value int
}

// Ledger persists one player's best score and finished sessions.
// A nil store gives a ledger that remembers nothing.
type Ledger struct {
	store  *storage.Store
	key    string
	player string
	logger *log.Logger

	mu     sync.Mutex
	closed bool
	queue  chan op
	done   chan struct{}
}

// KeyFor returns the best score key for a player.
func KeyFor(base, player string) string {
	if base == "" {
		base = DefaultKey
	}
	if player == "" || player == LocalPlayer {
		return base
	}
	return base + "/" + player
}

// New starts a ledger for player writing to store.
func New(store *storage.Store, key, player string, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = LocalPlayer
	}
	l := &Ledger{
		store:  store,
		key:    KeyFor(key, player),
		player: player,
		logger: logger.WithPrefix("ledger"),
		queue:  make(chan op, queueSize),
		done:   make(chan struct{}),
	}
	go l.run()
	return l
}

// Load reads the stored best score. Failures are logged and reported as absent.
func (l *Ledger) Load() (int, bool) {
	if l.store == nil {
		return 0, false
	}
	best, ok, err := l.store.BestScore(l.key)
	if err != nil {
		l.logger.Warn("could not load best score", "key", l.key, "error", err)
		return 0, false
	}
	l.logger.Debug("loaded best score", "key", l.key, "best", best, "found", ok)
	return best, ok
}

// Save queues a new best score.
func (l *Ledger) Save(best int) {
	l.enqueue(op{kind: opSave, value: best})
}

// Reset queues removal of the best score.
func (l *Ledger) Reset() {
	l.enqueue(op{kind: opReset})
}

// Record queues a finished session for the history.
func (l *Ledger) Record(score int) {
	l.enqueue(op{kind: opRecord, value: score})
}

func (l *Ledger) enqueue(o op) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		l.logger.Warn("write after close dropped", "op", o.kind)
		return
	}
	select {
	case l.queue <- o:
	default:
		l.logger.Warn("write queue full, dropping", "op", o.kind)
	}
}

// Close waits for pending writes to finish. Later writes are dropped.
func (l *Ledger) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()
	<-l.done
}

func (l *Ledger) run() {
	defer close(l.done)
	for o := range l.queue {
		if err := l.apply(o); err != nil {
			l.logger.Error("write failed", "op", o.kind, "error", err)
		}
	}
}

func (l *Ledger) apply(o op) error {
	if l.store == nil {
		return nil
	}
	switch o.kind {
	case opSave:
		return l.store.SetBestScore(l.key, o.value)
	case opReset:
		return l.store.ClearBestScore(l.key)
	case opRecord:
		_, err := l.store.SaveScore(l.player, o.value)
		return err
	}
	return nil
}

func (k opKind) String() string {
	switch k {
	case opSave:
		return "save"
	case opReset:
		return "reset"
	case opRecord:
		return "record"
	default:
		return "unknown"
	}
}
