package wizard

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"velorabook/pkg/metrics"
	"velorabook/pkg/store"
	"velorabook/pkg/utils"
)

const (
	DefaultTimeout = 30 * time.Second
	DefaultIdleTTL = 2 * time.Hour
)

type Options struct {
	// Timeout bounds each generation call. Zero selects DefaultTimeout.
	Timeout time.Duration
	// IdleTTL is how long an untouched session is kept. Zero selects DefaultIdleTTL.
	IdleTTL time.Duration
}

// Manager owns the live questionnaire sessions.
type Manager struct {
	sessions *utils.SyncMap[string, *Session]
	gen      Generator
	store    store.Store
	opts     Options
	now      func() time.Time
}

func NewManager(gen Generator, st store.Store, opts Options) *Manager {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	return &Manager{
		sessions: utils.NewSyncMap[string, *Session](),
		gen:      gen,
		store:    st,
		opts:     opts,
		now:      time.Now,
	}
}

// Create starts a new session in StateSelectType.
func (m *Manager) Create() *Session {
	m.Evict()
	s := newSession(ksuid.New().String(), m.gen, m.store, m.opts.Timeout, m.now)
	m.sessions.Store(s.ID, s)
	metrics.WizardSessions.Set(float64(m.sessions.Len()))
	log.Debug("wizard session created", "session", s.ID)
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	return m.sessions.Load(id)
}

func (m *Manager) Delete(id string) {
	m.sessions.Delete(id)
	metrics.WizardSessions.Set(float64(m.sessions.Len()))
}

// Evict drops sessions idle for longer than IdleTTL. Sessions with a generation in
// flight are kept.
func (m *Manager) Evict() int {
	cutoff := m.now().Add(-m.opts.IdleTTL)
	n := m.sessions.DeleteFunc(func(_ string, s *Session) bool {
		return !s.Generating() && s.idleSince().Before(cutoff)
	})
	if n > 0 {
		log.Info("evicted idle wizard sessions", "count", n)
		metrics.WizardSessions.Set(float64(m.sessions.Len()))
	}
	return n
}
