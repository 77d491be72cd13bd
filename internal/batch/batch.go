package batch

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"breakeven/server/internal/amortization"
	"breakeven/server/internal/models"
)

// Job is one named parameter set to compute.
type Job struct {
	Name string
	Loan models.LoanParameters
	Rent models.RentParameters
}

// Outcome carries the computation for one job. Err is set when the core
// rejected the parameters; the result fields are nil in that case.
type Outcome struct {
	Name    string
	Result  *models.ScheduleResult
	Summary *models.Summary
	Err     error
}

// Computer runs schedule computations concurrently with a bounded number
// of workers, for comparing several parameter sets in one request.
type Computer struct {
	workers int
	logger  *logrus.Logger
}

func NewComputer(workers int, logger *logrus.Logger) *Computer {
	if workers < 1 {
		workers = 1
	}
	return &Computer{workers: workers, logger: logger}
}

// ComputeAll processes every job and returns the outcomes in job order.
// Jobs not yet started when the context is cancelled carry the context
// error as their outcome.
func (c *Computer) ComputeAll(ctx context.Context, jobs []Job) []Outcome {
	outcomes := make([]Outcome, len(jobs))

	workers := c.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				if err := ctx.Err(); err != nil {
					outcomes[idx] = Outcome{Name: jobs[idx].Name, Err: err}
					continue
				}
				outcomes[idx] = c.computeOne(jobs[idx])
			}
		}()
	}

	for idx := range jobs {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	return outcomes
}

func (c *Computer) computeOne(job Job) Outcome {
	result, err := amortization.GenerateSchedule(job.Loan, job.Rent)
	if err != nil {
		c.logger.WithError(err).WithField("scenario", job.Name).Warn("Comparison entry rejected")
		return Outcome{Name: job.Name, Err: err}
	}

	return Outcome{
		Name:    job.Name,
		Result:  result,
		Summary: amortization.Summarize(result, job.Rent),
	}
}
