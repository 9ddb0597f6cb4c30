package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc uint64 // bytes in use by application
	Sys       uint64 // total bytes obtained from OS
	NumGC     uint32 // number of completed GC cycles
}

// ReadMemory reads current runtime memory statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{HeapAlloc: m.HeapAlloc, Sys: m.Sys, NumGC: m.NumGC}
}
