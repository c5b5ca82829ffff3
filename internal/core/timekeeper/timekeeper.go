package timekeeper

import (
	"sync"
	"time"

	"minuteclock/internal/core/daytime"
	"minuteclock/internal/core/model"

	"github.com/hashicorp/go-hclog"
)

// DefaultTickInterval keeps the display within a quarter second of the wall
// clock.
const DefaultTickInterval = 250 * time.Millisecond

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
	Formatter    *daytime.Formatter
	Logger       hclog.Logger
}

// TimeKeeper polls the clock on a fixed cadence and publishes a fresh
// Snapshot to every subscriber.
type TimeKeeper struct {
	mu      sync.Mutex
	config  model.ClockConfig
	options Config
	latest  daytime.Snapshot
	events  []chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	logger  hclog.Logger
}

// New creates a TimeKeeper with the provided configuration.
func New(config model.ClockConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.Clock == nil {
		options.Clock = systemClock{}
	}
	if options.Formatter == nil {
		options.Formatter = daytime.DetectFormatter()
	}
	if options.Logger == nil {
		options.Logger = hclog.NewNullLogger()
	}

	keeper := &TimeKeeper{
		config:  config,
		options: options,
		logger:  options.Logger,
	}
	keeper.latest = keeper.readLocked(options.Clock.Now())
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start publishes an immediate reading and launches the polling loop.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	keeper.doneCh = make(chan struct{})
	stopCh, doneCh := keeper.stopCh, keeper.doneCh
	keeper.publishLocked(EventTick, keeper.options.Clock.Now())
	keeper.mu.Unlock()

	keeper.logger.Debug("polling started", "interval", keeper.options.TickInterval)
	go keeper.run(stopCh, doneCh)
}

// Stop ends polling, waits for the loop to exit and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	doneCh := keeper.doneCh
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	<-doneCh
	for _, ch := range events {
		close(ch)
	}
	keeper.logger.Debug("polling stopped")
}

// UpdateConfig swaps the preferences and republishes at once so observers
// do not wait for the next tick.
func (keeper *TimeKeeper) UpdateConfig(config model.ClockConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.config == config {
		return
	}
	keeper.config = config
	keeper.logger.Debug("preferences updated", "countdown", config.Countdown, "color", config.Color.String(), "keep_awake", config.KeepAwake)
	keeper.publishLocked(EventConfigChange, keeper.options.Clock.Now())
}

// Config returns the active preferences.
func (keeper *TimeKeeper) Config() model.ClockConfig {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.config
}

// Latest returns the most recently published reading.
func (keeper *TimeKeeper) Latest() daytime.Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.latest
}

func (keeper *TimeKeeper) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			keeper.tick()
		}
	}
}

func (keeper *TimeKeeper) tick() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}
	keeper.publishLocked(EventTick, keeper.options.Clock.Now())
}

func (keeper *TimeKeeper) readLocked(now time.Time) daytime.Snapshot {
	return keeper.options.Formatter.Snapshot(now, keeper.config.Countdown)
}

func (keeper *TimeKeeper) publishLocked(eventType EventType, now time.Time) {
	keeper.latest = keeper.readLocked(now)
	event := Event{
		Type:     eventType,
		Snapshot: keeper.latest,
		Config:   keeper.config,
		At:       now,
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
