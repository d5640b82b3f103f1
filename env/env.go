//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the SHA-1 model and
// its validation tools.
package env

import (
	"crypto/rand"
	"io"
	"runtime"
)

// Config defines the global system configuration. Config must not be
// modified after being passed to any module. It is safe for
// concurrent use by multiple modules as they do not modify it.
type Config struct {
	// Rand is the source of entropy for random validation seeds.
	Rand io.Reader

	// Workers limits the number of concurrent validation workers. The
	// value 0 selects the number of CPUs.
	Workers int
}

// GetRandom returns the source of entropy for random seeds.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetWorkers returns the number of concurrent validation workers.
func (config *Config) GetWorkers() int {
	if config != nil && config.Workers > 0 {
		return config.Workers
	}
	return runtime.NumCPU()
}
