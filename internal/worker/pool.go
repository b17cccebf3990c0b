// Package worker analyzes track previews in the background.
package worker

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

const jobTimeout = 30 * time.Second

// Job is one preview clip waiting for analysis.
type Job struct {
	TrackID    string
	PreviewURL string
}

// AnalyzeFunc measures the loudness energy of a preview in [0,1].
type AnalyzeFunc func(ctx context.Context, previewURL string) (float64, error)

// Pool runs a fixed number of workers over a bounded queue.
type Pool struct {
	store   ports.TrackFeatureStore
	analyze AnalyzeFunc
	workers int
	jobs    chan Job
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ ports.PreviewAnalyzer = (*Pool)(nil)

// NewPool creates a worker pool. A nil analyze uses the MP3 decoder.
func NewPool(store ports.TrackFeatureStore, analyze AnalyzeFunc, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if analyze == nil {
		analyze = NewPreviewAnalyzer(nil).Analyze
	}
	return &Pool{
		store:   store,
		analyze: analyze,
		workers: workers,
		jobs:    make(chan Job, queueSize),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop closes the queue and waits for queued jobs to drain.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}

// Enqueue queues a preview without blocking. Jobs are dropped when the queue
// is full or the pool has stopped.
func (p *Pool) Enqueue(trackID, previewURL string) {
	p.Submit(Job{TrackID: trackID, PreviewURL: previewURL})
}

// Submit queues a job without blocking.
func (p *Pool) Submit(job Job) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		log.Printf("WARN worker: pool stopped, dropping job for %s", job.TrackID)
		return
	}

	select {
	case p.jobs <- job:
	default:
		log.Printf("WARN worker: queue full, dropping job for %s", job.TrackID)
	}
}

func (p *Pool) processJob(job Job) {
	if job.PreviewURL == "" {
		log.Printf("DEBUG worker: no preview URL for track %s, skipping", job.TrackID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	energy, err := p.analyze(ctx, job.PreviewURL)
	if err != nil {
		log.Printf("WARN worker: analysis failed for track %s: %v", job.TrackID, err)
		return
	}

	features, err := p.store.GetTrackFeatures(ctx, job.TrackID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Printf("WARN worker: failed to load track %s: %v", job.TrackID, err)
		return
	}
	features.Energy = energy

	if err := p.store.UpdateTrackFeatures(ctx, job.TrackID, features); err != nil {
		log.Printf("WARN worker: failed to update track %s: %v", job.TrackID, err)
		return
	}
	log.Printf("DEBUG worker: track %s preview energy %.2f", job.TrackID, energy)
}
