package forecast

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"myweather/internal/models"
	"myweather/pkg/logger"
)

var (
	ErrEmptyCity   = errors.New("city must not be empty")
	ErrStoreClosed = errors.New("forecast store is closed")
)

// NoDataMessage is shown when a fetch succeeds without a forecast.
const NoDataMessage = "No forecast data found"

// Repository is the part of the forecast repository the store depends on.
type Repository interface {
	GetForecast(ctx context.Context, city, apiKey string) models.Outcome[*models.ForecastResponse]
}

// ForecastStore owns the view state of the latest forecast request. All
// mutations happen under mu; readers only ever get copies.
type ForecastStore struct {
	repo         Repository
	apiKey       string
	discardStale bool
	l            *logger.Logger

	mu      sync.Mutex
	state   models.ForecastViewState
	subs    map[int]chan models.ForecastViewState
	nextSub int
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type Option func(*ForecastStore)

// WithDiscardStale controls what happens when an older fetch resolves after a
// newer one was issued. When enabled (the default) the older result is dropped.
// When disabled whichever fetch resolves last wins.
func WithDiscardStale(discard bool) Option {
	return func(s *ForecastStore) {
		s.discardStale = discard
	}
}

func NewForecastStore(repo Repository, apiKey string, l *logger.Logger, opts ...Option) *ForecastStore {
	ctx, cancel := context.WithCancel(context.Background())

	s := &ForecastStore{
		repo:         repo,
		apiKey:       apiKey,
		discardStale: true,
		l:            l,
		subs:         make(map[int]chan models.ForecastViewState),
		ctx:          ctx,
		cancel:       cancel,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Fetch starts loading the forecast for city and returns immediately with the
// fetch id. Loading is set and the entry list cleared before Fetch returns.
func (s *ForecastStore) Fetch(city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", ErrEmptyCity
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrStoreClosed
	}

	s.state.Generation++
	s.state.Loading = true
	s.state.Entries = nil
	s.state.Requested = city
	generation := s.state.Generation
	s.notifyLocked()

	s.wg.Add(1)
	s.mu.Unlock()

	fetchID := uuid.NewString()

	s.l.Info("starting forecast fetch", map[string]any{
		"fetch_id":   fetchID,
		"city":       city,
		"generation": generation,
	})

	go func() {
		defer s.wg.Done()

		outcome := s.repo.GetForecast(s.ctx, city, s.apiKey)
		s.complete(fetchID, generation, outcome)
	}()

	return fetchID, nil
}

func (s *ForecastStore) complete(fetchID string, generation uint64, outcome models.Outcome[*models.ForecastResponse]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := map[string]any{
		"fetch_id":   fetchID,
		"generation": generation,
		"latest":     s.state.Generation,
	}

	if generation != s.state.Generation && s.discardStale {
		s.l.Debug("discarding stale forecast result", fields)
		return
	}

	s.state.Loading = false
	s.state.Entries = nil

	if outcome.Ok() && outcome.Value() == nil {
		outcome = models.Failure[*models.ForecastResponse](NoDataMessage)
	}

	if !outcome.Ok() {
		s.state.City = outcome.Message()
		s.state.Failed = true
		fields["err"] = outcome.Message()
		s.l.Warning("forecast fetch failed", fields)
		s.notifyLocked()
		return
	}

	forecast := outcome.Value()
	s.state.City = forecast.City.Name
	s.state.Failed = false
	if len(forecast.List) > 0 {
		s.state.Entries = make([]models.ForecastEntry, len(forecast.List))
		for i, e := range forecast.List {
			s.state.Entries[i] = e.Clone()
		}
	}

	fields["city"] = forecast.City.Name
	fields["entries"] = len(forecast.List)
	s.l.Info("completed forecast fetch", fields)
	s.notifyLocked()
}

// Snapshot returns a copy of the current view state.
func (s *ForecastStore) Snapshot() models.ForecastViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Subscribe returns a channel that receives the view state after every change
// and a func to stop receiving. Notifications coalesce: a slow reader only
// sees the most recent state. The channel is closed on unsubscribe or Close.
func (s *ForecastStore) Subscribe() (<-chan models.ForecastViewState, func()) {
	ch := make(chan models.ForecastViewState, 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// notifyLocked must be called with mu held. Sends never block since the store
// is the only sender and drains a pending value before replacing it.
func (s *ForecastStore) notifyLocked() {
	for _, ch := range s.subs {
		snap := s.state.Clone()
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

// Wait blocks until every fetch started so far has resolved.
func (s *ForecastStore) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight fetches, waits for them to resolve and closes all
// subscriptions. Further calls to Fetch return ErrStoreClosed.
func (s *ForecastStore) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}

	s.l.Info("forecast store closed")
}
