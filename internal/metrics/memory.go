// Package metrics reads process memory statistics and summarises the
// multiplication counters registered with Prometheus.
package metrics

import "runtime"

// MemorySnapshot is a point-in-time reading of the Go heap.
type MemorySnapshot struct {
	HeapAlloc   uint64
	Sys         uint64
	NumGC       uint32
	HeapObjects uint64
	// TotalAlloc only grows, so its delta measures what a run allocated.
	TotalAlloc uint64
}

// ReadMemory returns the current heap statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
		TotalAlloc:  m.TotalAlloc,
	}
}

// AllocatedSince returns the bytes allocated and the GC cycles run between
// before and after.
func AllocatedSince(before, after MemorySnapshot) (bytes uint64, gcs uint32) {
	return after.TotalAlloc - before.TotalAlloc, after.NumGC - before.NumGC
}
