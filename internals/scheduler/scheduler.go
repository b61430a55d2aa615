package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one cron entry. An empty Spec disables it.
type Job struct {
	Name    string
	Spec    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

// New registers jobs on a cron that skips a run while the previous one is
// still going. The caller starts and stops it.
func New(jobs ...Job) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	for _, j := range jobs {
		if j.Spec == "" {
			log.Printf("[INFO] scheduler: %s desativado", j.Name)
			continue
		}
		if _, err := c.AddFunc(j.Spec, wrap(j)); err != nil {
			return nil, err
		}
		log.Printf("[INFO] scheduler: %s agendado (%q)", j.Name, j.Spec)
	}
	return c, nil
}

func wrap(j Job) func() {
	timeout := j.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()
		if err := j.Run(ctx); err != nil {
			log.Printf("[ERROR] scheduler: %s: %v", j.Name, err)
			return
		}
		log.Printf("[INFO] scheduler: %s ok em %s", j.Name, time.Since(start).Round(time.Millisecond))
	}
}
