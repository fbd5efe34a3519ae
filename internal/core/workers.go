package core

import (
	"runtime"
	"sync"
)

// Workers runs one fill callback per lane, either directly (single lane, no
// point paying for goroutines) or concurrently across a pool bounded to
// runtime.NumCPU() workers, mirroring how the dataset builder shards its
// item range across NumCPU() goroutines and joins on a WaitGroup. The bound
// only matters when a caller picks more lanes than there are cores; lane
// count itself is never altered; it's an Argon2 parameter baked into H0.
type Workers struct {
	lanes   uint32
	poolCap int
}

func NewWorkers(lanes uint32) *Workers {
	poolCap := runtime.NumCPU()
	if poolCap > int(lanes) {
		poolCap = int(lanes)
	}
	return &Workers{lanes: lanes, poolCap: poolCap}
}

// Run calls fillLane(lane) for every lane 0..Lanes-1. With more than one
// lane, calls run concurrently (at most poolCap at a time) and Run blocks
// until every one returns.
func (w *Workers) Run(fillLane func(lane uint32)) {
	if w.lanes == 1 {
		fillLane(0)
		return
	}

	sem := make(chan struct{}, w.poolCap)
	var wg sync.WaitGroup
	wg.Add(int(w.lanes))
	for l := uint32(0); l < w.lanes; l++ {
		sem <- struct{}{}
		go func(lane uint32) {
			defer wg.Done()
			defer func() { <-sem }()
			fillLane(lane)
		}(l)
	}
	wg.Wait()
}
