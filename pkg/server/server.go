package server

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Aquaduckd/pinchordlookup/pkg/config"
	"github.com/Aquaduckd/pinchordlookup/pkg/layout"
)

// Server handles the IPC for spelling lookups
type Server struct {
	sched     *Scheduler
	dec       *msgpack.Decoder
	writer    io.Writer
	wmu       sync.Mutex
	maxTarget int
}

// NewServer creates a lookup server using stdin/stdout for IPC
func NewServer(loader *layout.Loader, cfg *config.Config) *Server {
	return newServer(loader, cfg, os.Stdin, os.Stdout)
}

func newServer(loader *layout.Loader, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	s := &Server{
		dec:       msgpack.NewDecoder(r),
		writer:    w,
		maxTarget: cfg.Server.MaxTarget,
	}
	s.sched = NewScheduler(loader, cfg.Server.BatchSize, cfg.Server.MaxLimit, s.sendResponse)
	return s
}

// ApplyConfig picks up runtime-tunable settings, used by the config
// watcher. Takes effect for jobs started after the call.
func (s *Server) ApplyConfig(cfg *config.Config) {
	s.sched.SetBatchSize(cfg.Server.BatchSize)
	s.sched.SetMaxLimit(cfg.Server.MaxLimit)
	log.Debugf("Applied config: batch_size=%d max_limit=%d", cfg.Server.BatchSize, cfg.Server.MaxLimit)
}

// Start begins listening for IPC requests. Returns nil on EOF (client
// closed the pipe); the worker is drained before returning.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	s.sched.Start()
	defer s.sched.Stop()

	s.sendResponse(ReadyResponse{Status: "ready"})

	for {
		var req LookupRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.sched.Drain()
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleLookup(req)
	}
}

// handleLookup validates a request and hands it to the scheduler.
// Validation failures are terminal for the job id but never stop the
// server loop.
func (s *Server) handleLookup(req LookupRequest) {
	if req.Version == "" {
		s.sendResponse(ErrorResponse{Kind: KindError, ID: req.ID, Error: "missing layout version"})
		log.Debug("Version is empty in request")
		return
	}
	if s.maxTarget > 0 && len(req.Target) > s.maxTarget {
		s.sendResponse(ErrorResponse{Kind: KindError, ID: req.ID, Error: "target exceeds maximum length"})
		log.Debugf("Target too long in request %d (%d bytes)", req.ID, len(req.Target))
		return
	}

	log.Debug("Queueing lookup", "id", req.ID, "version", req.Version, "target", req.Target)
	s.sched.Submit(Job{
		ID:         req.ID,
		Version:    req.Version,
		Target:     req.Target,
		MaxEntries: req.MaxEntries,
	})
}

// sendResponse marshals one response and writes it to the client.
// The worker goroutine and the request loop both write here, so writes
// are serialized.
func (s *Server) sendResponse(response any) {
	data, err := msgpack.Marshal(response)
	if err != nil {
		log.Errorf("Marshaling response: %v", err)
		return
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	if _, err := s.writer.Write(data); err != nil {
		log.Errorf("Writing response: %v", err)
	}
}
