package webapi

import (
	"sync"
	"time"

	"github.com/tsawler/recast"
)

// Job records one conversion request and its outcome. Conversions run
// synchronously, so a stored job is always in a terminal state: either
// StatusSuccess with an output file, or StatusError with a message.
type Job struct {
	ID             string           `json:"job_id"`
	Status         string           `json:"status"`
	Input          string           `json:"input,omitempty"`
	PagesConverted int              `json:"pages_converted,omitempty"`
	Stats          recast.Stats     `json:"stats"`
	Warnings       []recast.Warning `json:"warnings,omitempty"`
	Error          string           `json:"error,omitempty"`
	Created        time.Time        `json:"created_at"`

	// OutputPath is where the produced document lives on disk. It is
	// served by the download endpoint, never sent to clients directly.
	OutputPath string `json:"-"`
}

// jobStore holds jobs in memory. Nothing is persisted; restarting the
// server forgets all jobs.
type jobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func newJobStore() *jobStore {
	return &jobStore{jobs: make(map[string]*Job)}
}

// put stores a finished job.
func (s *jobStore) put(j *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[j.ID] = j
}

// get looks up a job by id.
func (s *jobStore) get(id string) (*Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	return j, ok
}
