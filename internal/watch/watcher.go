package watch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nwbound/ferrydeck/internal/ferry"
)

// Alerter receives the notifications the watcher produces. *notify.Notifier
// implements it.
type Alerter interface {
	SendServiceDisruption(route, status string, alerts []string) error
	SendServiceRestored(route, status string) error
}

// Watcher polls one route's conditions on an interval and notifies on
// service-status changes. Notifications are deduplicated on change: a
// disruption is reported once, and again only when its shape changes or it
// clears.
type Watcher struct {
	engine    *ferry.Engine
	alerter   Alerter
	logger    *logrus.Logger
	route     string
	direction string
	interval  time.Duration

	mu         sync.Mutex
	lastStatus string
	lastAlerts string

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewWatcher(engine *ferry.Engine, alerter Alerter, logger *logrus.Logger, route, direction string, interval time.Duration) *Watcher {
	return &Watcher{
		engine:    engine,
		alerter:   alerter,
		logger:    logger,
		route:     route,
		direction: direction,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *Watcher) Stop() {
	close(w.stopCh)
	w.wg.Wait()
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped: context cancelled")
			return
		case <-w.stopCh:
			w.logger.Info("watcher stopped: stop signal received")
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check runs a single poll. Exported so watch mode can trigger an immediate
// check and tests can drive it without the ticker.
func (w *Watcher) Check(ctx context.Context) {
	payload, err := w.engine.Report(ctx, w.route, w.direction)
	if err != nil {
		w.logger.WithField("error", err).Error("conditions check failed")
		return
	}

	status := payload.Service.Status
	alertKey := strings.Join(payload.Alerts, "; ")

	w.mu.Lock()
	isFirstCheck := w.lastStatus == ""
	changed := w.lastStatus != status || w.lastAlerts != alertKey
	wasDisrupted := w.lastStatus != "" && !isNormal(w.lastStatus)
	w.lastStatus = status
	w.lastAlerts = alertKey
	w.mu.Unlock()

	w.logger.WithFields(logrus.Fields{
		"route":  payload.Route,
		"status": status,
		"alerts": alertKey,
	}).Info("route conditions")

	if !changed {
		return
	}
	if isFirstCheck && isNormal(status) {
		return
	}

	if !isNormal(status) {
		if err := w.alerter.SendServiceDisruption(payload.Route, status, payload.Alerts); err != nil {
			w.logger.WithField("error", err).Error("failed to send disruption notification")
		}
		return
	}
	if wasDisrupted {
		if err := w.alerter.SendServiceRestored(payload.Route, status); err != nil {
			w.logger.WithField("error", err).Error("failed to send restored notification")
		}
	}
}

func isNormal(status string) bool {
	return status == "Normal Operations" || status == "Weekend Service"
}
