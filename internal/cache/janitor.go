package cache

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Janitor periodically drops expired entries from an in-memory cache so
// that keys which are never read again do not pile up.
type Janitor struct {
	memory   *Memory
	interval time.Duration
	logger   *logrus.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewJanitor(memory *Memory, interval time.Duration, logger *logrus.Logger) *Janitor {
	return &Janitor{
		memory:   memory,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (j *Janitor) Start() {
	j.wg.Add(1)
	go j.run()
}

// Stop ends the sweep loop and waits for it to finish.
func (j *Janitor) Stop() {
	close(j.stopChan)
	j.wg.Wait()
}

func (j *Janitor) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ticker.C:
			if dropped := j.memory.sweep(); dropped > 0 {
				j.logger.WithField("entries", dropped).Debug("Swept expired cache entries")
			}
		}
	}
}
