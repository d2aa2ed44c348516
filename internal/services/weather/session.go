package weather

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"weather-search/internal/history"
	"weather-search/internal/models"
	"weather-search/internal/units"
	"weather-search/pkg/logger"
)

// ErrSuperseded is returned by Search when a newer search was started before
// this one resolved. Its result was dropped.
var ErrSuperseded = errors.New("search superseded by a newer one")

// Snapshot is an immutable copy of a session's view state.
type Snapshot struct {
	ID       string               `json:"id"`
	Query    string               `json:"query"`
	State    models.RequestState  `json:"state"`
	Forecast models.ForecastState `json:"forecast"`
	History  []string             `json:"history"`
	Unit     units.Unit           `json:"unit" swaggertype:"string" enums:"celsius,fahrenheit"`
}

// Session is the view state of one browser: the latest current-weather
// result, the forecast for the resolved city, recent searches and the
// temperature unit.
//
// Searches run outside the lock. Each one takes a generation number when it
// starts and its result is applied only if no later search was started in the
// meantime.
type Session struct {
	id          string
	service     *WeatherService
	defaultCity string
	l           *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	start  sync.Once

	mu         sync.Mutex
	generation uint64
	state      models.RequestState
	forecast   models.ForecastState
	watch      cityWatch
	history    []string
	unit       units.Unit
	query      string
	lastSeen   time.Time
	closed     bool
}

func NewSession(id string, service *WeatherService, defaultCity string, l *logger.Logger) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:          id,
		service:     service,
		defaultCity: defaultCity,
		l:           l,
		ctx:         ctx,
		cancel:      cancel,
		state:       models.Idle(),
		forecast:    models.ForecastState{Entries: []models.ForecastEntry{}},
		history:     []string{},
		unit:        units.Celsius,
		lastSeen:    time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Start issues the initial fetch for the default city in the background. Only
// the first call has an effect. The default city is not added to the history.
func (s *Session) Start() {
	s.start.Do(func() {
		gen := s.begin("", false)
		s.background(func(ctx context.Context) {
			_ = s.run(ctx, gen, s.defaultCity, false)
		})
	})
}

// Submit starts a user search in the background and returns immediately. The
// search is sequenced at the time of the call, not when the goroutine runs.
func (s *Session) Submit(query string) {
	gen := s.begin(query, true)
	s.background(func(ctx context.Context) {
		_ = s.run(ctx, gen, query, true)
	})
}

// Search runs a user search to completion: current conditions, then, when
// the resolved city changed, the forecast. It returns ErrCityNotFound when
// the current fetch failed and ErrSuperseded when a newer search won.
func (s *Session) Search(ctx context.Context, query string) error {
	return s.run(ctx, s.begin(query, true), query, true)
}

// begin claims the next generation and shows the loading state.
func (s *Session) begin(query string, typed bool) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if typed {
		s.query = query
	}
	s.generation++
	s.state = models.Loading()
	return s.generation
}

func (s *Session) run(ctx context.Context, gen uint64, query string, record bool) error {
	view, err := s.service.FetchCurrent(ctx, query)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.l.Debug("dropping superseded search", map[string]any{"session": s.id, "query": query})
		return ErrSuperseded
	}
	if err != nil {
		s.state = models.Failed()
		s.watch.Reset()
		s.forecast = models.ForecastState{Entries: []models.ForecastEntry{}}
		s.mu.Unlock()
		return err
	}

	s.state = models.Loaded(view)
	if record {
		s.history = history.Record(s.history, query)
	}
	watchGen, changed := s.watch.Observe(view.City)
	if changed {
		s.forecast = models.ForecastState{Loading: true, Entries: []models.ForecastEntry{}}
	}
	s.mu.Unlock()

	if !changed {
		return nil
	}

	result := s.service.FetchForecast(ctx, view.City)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.watch.Current(watchGen) {
		s.l.Debug("dropping stale forecast", map[string]any{"session": s.id, "city": view.City})
		return nil
	}
	s.forecast = models.ForecastState{Entries: result.Entries, Message: result.Message}

	return nil
}

func (s *Session) background(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Wait blocks until all background searches have finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close aborts in-flight requests and waits for them to return.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *Session) ToggleUnit() units.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unit = s.unit.Toggle()
	return s.unit
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = now
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:       s.id,
		Query:    s.query,
		State:    s.state,
		Forecast: s.forecast,
		History:  slices.Clone(s.history),
		Unit:     s.unit,
	}
}
