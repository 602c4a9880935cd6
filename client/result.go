package client

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viant/authprobe/internal/collection"
)

// Section identifies the operation a result belongs to.
type Section string

const (
	SectionRegister Section = "register"
	SectionLogin    Section = "login"
	SectionStatus   Section = "status"
	SectionLink     Section = "link"
)

// Sections lists all result sections in display order.
var Sections = []Section{SectionRegister, SectionLogin, SectionStatus, SectionLink}

// DefaultMessageTTL is how long a non-error result stays visible.
const DefaultMessageTTL = 5 * time.Second

// Result is the outcome message of the last operation in a section.
type Result struct {
	ID      string
	Message string
	IsError bool
}

type resultEntry struct {
	result Result
	timer  *time.Timer
}

// board holds one result per section and expires transient ones.
type board struct {
	mux      sync.Mutex // guards replacement and expiry arming
	entries  *collection.SyncMap[Section, *resultEntry]
	ttl      time.Duration
	onExpire func(section Section)
}

func newBoard(ttl time.Duration, onExpire func(section Section)) *board {
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	return &board{entries: collection.NewSyncMap[Section, *resultEntry](), ttl: ttl, onExpire: onExpire}
}

// show replaces the section result; the superseded result's expiry is cancelled.
func (b *board) show(section Section, message string, isError bool) Result {
	b.mux.Lock()
	defer b.mux.Unlock()
	entry := &resultEntry{result: Result{ID: uuid.NewString(), Message: message, IsError: isError}}
	if prev, ok := b.entries.Swap(section, entry); ok {
		prev.stop()
	}
	if !isError {
		id := entry.result.ID
		entry.timer = time.AfterFunc(b.ttl, func() { b.expire(section, id) })
	}
	return entry.result
}

func (b *board) expire(section Section, id string) {
	if b.entries.DeleteIf(section, func(e *resultEntry) bool { return e.result.ID == id }) && b.onExpire != nil {
		b.onExpire(section)
	}
}

// clear removes the section result, reporting whether there was one.
func (b *board) clear(section Section) bool {
	b.mux.Lock()
	defer b.mux.Unlock()
	prev, ok := b.entries.Delete(section)
	if ok {
		prev.stop()
	}
	return ok
}

func (b *board) get(section Section) (Result, bool) {
	entry, ok := b.entries.Get(section)
	if !ok {
		return Result{}, false
	}
	return entry.result, true
}

func (e *resultEntry) stop() {
	if e.timer != nil {
		e.timer.Stop()
	}
}
