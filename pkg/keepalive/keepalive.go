package keepalive

import (
	"context"
	"english_learning_backend/pkg/logger"
	"net/http"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Pinger periodically requests a URL so free-tier hosts do not idle the
// process out.
type Pinger struct {
	URL       string
	Interval  time.Duration
	Client    *http.Client
	scheduler *gocron.Scheduler
}

func New(url string, interval time.Duration) *Pinger {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Pinger{
		URL:      url,
		Interval: interval,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Start schedules the ping. It is a no-op without a URL.
func (p *Pinger) Start() error {
	if p.URL == "" {
		logger.Log.Info("Keep-alive disabled, no URL configured")
		return nil
	}

	p.scheduler = gocron.NewScheduler(time.UTC)
	_, err := p.scheduler.Every(p.Interval).WaitForSchedule().Do(func() { p.Ping(context.Background()) })
	if err != nil {
		return err
	}
	p.scheduler.StartAsync()
	logger.Log.Info("Keep-alive started", zap.String("url", p.URL), zap.Duration("interval", p.Interval))
	return nil
}

func (p *Pinger) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}

// Ping issues one GET and reports the status code.
func (p *Pinger) Ping(ctx context.Context) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		logger.Log.Warn("Keep-alive request invalid", zap.Error(err))
		return 0
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		logger.Log.Warn("Keep-alive ping failed", zap.String("url", p.URL), zap.Error(err))
		return 0
	}
	defer resp.Body.Close()

	logger.Log.Debug("Keep-alive ping", zap.String("url", p.URL), zap.Int("status", resp.StatusCode))
	return resp.StatusCode
}
