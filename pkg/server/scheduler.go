package server

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/Aquaduckd/pinchordlookup/internal/logger"
	"github.com/Aquaduckd/pinchordlookup/pkg/layout"
	"github.com/Aquaduckd/pinchordlookup/pkg/spell"
)

// Job is one spelling lookup: a caller-chosen id, a layout version, the
// target word and an optional result cap.
type Job struct {
	ID         int64
	Version    string
	Target     string
	MaxEntries int
}

// Scheduler runs jobs one at a time on a single worker goroutine.
// Submitting a job makes it current immediately: the running job notices
// at its next chunk boundary and stops silently, and at most one job
// waits in the pending slot (a newer submission replaces it). Per-job
// search state is owned by the worker and dropped when the job ends.
type Scheduler struct {
	loader *layout.Loader
	send   func(any)
	log    *log.Logger

	batchSize atomic.Int64
	maxLimit  atomic.Int64

	mu      sync.Mutex
	pending *Job
	wake    chan struct{}
	stopCh  chan struct{}
	drainCh chan struct{}
	doneCh  chan struct{}
	stopped sync.Once
	drained sync.Once

	current atomic.Int64

	imu     sync.Mutex
	indexes map[string]*spell.Index
}

// NewScheduler creates a scheduler streaming responses through send.
// send must be safe to call from the worker goroutine.
func NewScheduler(loader *layout.Loader, batchSize, maxLimit int, send func(any)) *Scheduler {
	s := &Scheduler{
		loader:  loader,
		send:    send,
		log:     logger.New("jobs"),
		wake:    make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		drainCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
		indexes: make(map[string]*spell.Index),
	}
	s.SetBatchSize(batchSize)
	s.SetMaxLimit(maxLimit)
	s.current.Store(-1)
	return s
}

// SetBatchSize updates the chunk size for future batches.
func (s *Scheduler) SetBatchSize(n int) {
	if n < 1 {
		n = 1
	}
	s.batchSize.Store(int64(n))
}

// SetMaxLimit updates the per-job spelling cap.
func (s *Scheduler) SetMaxLimit(n int) {
	if n < 1 {
		n = 1
	}
	s.maxLimit.Store(int64(n))
}

// Start launches the worker goroutine.
func (s *Scheduler) Start() {
	go s.run()
}

// Stop shuts the worker down and waits for it to finish. The running
// job, if any, stops at its next chunk boundary.
func (s *Scheduler) Stop() {
	s.stopped.Do(func() { close(s.stopCh) })
	<-s.doneCh
}

// Drain lets queued and running jobs finish, then stops the worker.
// Used on clean client disconnect so terminal messages are not lost.
func (s *Scheduler) Drain() {
	s.drained.Do(func() { close(s.drainCh) })
	<-s.doneCh
}

// Submit queues a job, replacing any queued-but-unstarted one, and
// supersedes the running job.
func (s *Scheduler) Submit(job Job) {
	s.mu.Lock()
	if s.pending != nil {
		s.log.Debugf("Job %d discarded before start, superseded by %d", s.pending.ID, job.ID)
	}
	s.pending = &job
	// publish the id before releasing the slot: takePending holds the
	// same mutex, so a worker that takes this job always sees it current
	s.current.Store(job.ID)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// superseded reports whether a newer job has replaced id as current,
// or the scheduler is shutting down.
func (s *Scheduler) superseded(id int64) bool {
	select {
	case <-s.stopCh:
		return true
	default:
	}
	return s.current.Load() != id
}

func (s *Scheduler) takePending() *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.pending
	s.pending = nil
	return job
}

func (s *Scheduler) run() {
	defer close(s.doneCh)
	for {
		select {
		case <-s.stopCh:
			return
		case <-s.wake:
		case <-s.drainCh:
		}
		for {
			job := s.takePending()
			if job == nil {
				break
			}
			s.runJob(job)
		}
		select {
		case <-s.drainCh:
			return
		default:
		}
	}
}

// index returns the chord index for a version, building it on first use.
// Indexes derive purely from the immutable per-version tables, so like
// the table cache they are never evicted.
func (s *Scheduler) index(version string, tables *layout.Tables) *spell.Index {
	s.imu.Lock()
	defer s.imu.Unlock()
	if idx, ok := s.indexes[version]; ok {
		return idx
	}
	idx := spell.NewIndex(tables)
	s.indexes[version] = idx
	return idx
}

// runJob executes one job to completion, cap, failure or supersession.
// Any panic from the engine is trapped here and reported as a job error
// rather than taking the process down.
func (s *Scheduler) runJob(job *Job) {
	superseded := false

	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("Job %d panicked: %v", job.ID, r)
			if !s.superseded(job.ID) {
				s.send(ErrorResponse{Kind: KindError, ID: job.ID, Error: fmt.Sprintf("internal error: %v", r)})
			}
		}
	}()

	tables, err := s.loader.Tables(job.Version)
	if err != nil {
		s.log.Warnf("Job %d: %v", job.ID, err)
		s.send(ErrorResponse{Kind: KindError, ID: job.ID, Error: err.Error()})
		return
	}

	search := spell.NewSearch(s.index(job.Version, tables))
	batchSize := int(s.batchSize.Load())
	limit := int(s.maxLimit.Load())
	if job.MaxEntries > 0 && job.MaxEntries < limit {
		limit = job.MaxEntries
	}

	var (
		total     int
		spellings []string
		strokes   [][]spell.Stroke
	)
	flush := func() {
		if len(spellings) == 0 {
			return
		}
		s.send(ChunkResponse{Kind: KindChunk, ID: job.ID, Spellings: spellings, Strokes: strokes})
		spellings = nil
		strokes = nil
	}

	search.Walk(job.Target, func(sp spell.Spelling) bool {
		spellings = append(spellings, spell.Render(sp))
		strokes = append(strokes, sp.Strokes())
		total++
		if total >= limit {
			return false
		}
		if len(spellings) >= batchSize {
			flush()
			if s.superseded(job.ID) {
				superseded = true
				return false
			}
		}
		return true
	})

	if superseded {
		s.log.Debugf("Job %d superseded after %d spellings", job.ID, total)
		return
	}
	if s.superseded(job.ID) {
		// a newer request landed after the last boundary check
		return
	}
	flush()
	s.send(DoneResponse{Kind: KindDone, ID: job.ID, Total: total})
	s.log.Debugf("Job %d done, %d spellings", job.ID, total)
}
