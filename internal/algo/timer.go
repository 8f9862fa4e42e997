package algo

import "time"

// elapsedMicroTimer is the monotonic elapsed-micro helper spec.md §2 names,
// grounded on the time.Since(start).Microseconds() pattern cmd/mapfhet/main.go
// and tools/run_benchmarks/main.go already use for planning-time measurement.
type elapsedMicroTimer struct {
	start time.Time
}

func startTimer() elapsedMicroTimer {
	return elapsedMicroTimer{start: time.Now()}
}

func (t elapsedMicroTimer) elapsedMicro() int64 {
	return time.Since(t.start).Microseconds()
}
