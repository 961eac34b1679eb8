package state

import (
	"time"

	"cascade/style"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:     time.Now(),
		Collected: &style.Collector{},
	}
}
