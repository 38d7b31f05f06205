package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/yigit/coursegraph/internal/app/repositories"
	"github.com/yigit/coursegraph/internal/pkg/logger"
	"github.com/yigit/coursegraph/internal/planner"
)

// SnapshotInfo summarizes one loaded snapshot.
type SnapshotInfo struct {
	Courses   int
	Edges     int
	Semesters int
	Source    string
}

// SnapshotProvider owns the current catalog graph. Readers get an immutable
// *planner.Graph; Refresh swaps in a freshly built graph atomically, so
// in-flight computations keep the snapshot they started with.
type SnapshotProvider struct {
	source repositories.SnapshotSource

	graph     atomic.Pointer[planner.Graph]
	semesters atomic.Pointer[[]planner.SemesterOffering]
	info      atomic.Pointer[SnapshotInfo]

	mu sync.Mutex // serializes refreshes, not reads
}

// NewSnapshotProvider creates a provider over the configured source
func NewSnapshotProvider(source repositories.SnapshotSource) *SnapshotProvider {
	return &SnapshotProvider{source: source}
}

// Graph returns the current catalog graph, loading it on first use
func (p *SnapshotProvider) Graph(ctx context.Context) (*planner.Graph, error) {
	if g := p.graph.Load(); g != nil {
		return g, nil
	}
	if _, err := p.Refresh(ctx); err != nil {
		return nil, err
	}
	return p.graph.Load(), nil
}

// Semesters returns the planning horizon of the current snapshot
func (p *SnapshotProvider) Semesters(ctx context.Context) ([]planner.SemesterOffering, error) {
	if _, err := p.Graph(ctx); err != nil {
		return nil, err
	}
	return *p.semesters.Load(), nil
}

// Refresh reloads the snapshot from the source and swaps the graph. A
// malformed snapshot leaves the previous graph in place.
func (p *SnapshotProvider) Refresh(ctx context.Context) (SnapshotInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap, err := p.source.LoadSnapshot(ctx)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("failed to load snapshot from %s: %w", p.source.Name(), err)
	}

	graph, err := planner.NewGraph(snap)
	if err != nil {
		return SnapshotInfo{}, err
	}

	info := SnapshotInfo{
		Courses:   len(snap.Courses),
		Edges:     len(snap.Edges),
		Semesters: len(snap.Semesters),
		Source:    p.source.Name(),
	}
	semesters := snap.Semesters
	p.semesters.Store(&semesters)
	p.graph.Store(graph)
	p.info.Store(&info)

	logger.Info().
		Str("source", info.Source).
		Int("courses", info.Courses).
		Int("edges", info.Edges).
		Int("semesters", info.Semesters).
		Msg("Catalog snapshot refreshed")

	return info, nil
}

// Info returns the summary of the current snapshot, if one is loaded
func (p *SnapshotProvider) Info() (SnapshotInfo, bool) {
	if info := p.info.Load(); info != nil {
		return *info, true
	}
	return SnapshotInfo{}, false
}
