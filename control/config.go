// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Dynamic configuration store for a pool runtime. The store carries the
// effective typed pool configuration plus free-form dynamic keys, notifies
// reload listeners on every publication, and is the single path for YAML
// load/save of pool configuration.

package control

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-threads/threadpool"
)

// ConfigStore holds the effective pool configuration and dynamic keys.
// Components register reload listeners to react to publications; the
// foundation publishes here on every pool creation.
type ConfigStore struct {
	mu        sync.RWMutex
	pool      threadpool.Config
	extra     map[string]any
	listeners []func()
}

// NewConfigStore returns a store primed with the stock pool configuration.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		pool:  *threadpool.DefaultConfig(),
		extra: make(map[string]any),
	}
}

// PoolConfig returns the currently published pool configuration.
func (cs *ConfigStore) PoolConfig() threadpool.Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.pool
}

// PublishPoolConfig records cfg as the effective pool configuration and
// dispatches reload listeners.
func (cs *ConfigStore) PublishPoolConfig(cfg *threadpool.Config) {
	if cfg == nil {
		return
	}
	cs.mu.Lock()
	cs.pool = *cfg
	cs.mu.Unlock()
	cs.dispatchReload()
}

// Set merges one dynamic key and dispatches reload listeners.
func (cs *ConfigStore) Set(key string, value any) {
	cs.mu.Lock()
	cs.extra[key] = value
	cs.mu.Unlock()
	cs.dispatchReload()
}

// Snapshot returns the flattened pool configuration merged with the
// dynamic keys. The result is a copy.
func (cs *ConfigStore) Snapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := map[string]any{
		"max_threads":       cs.pool.MaxThreads,
		"max_tasks":         cs.pool.MaxTasks,
		"dispatcher_period": cs.pool.DispatcherPeriod,
		"platform":          cs.pool.Platform.String(),
	}
	for k, v := range cs.extra {
		out[k] = v
	}
	return out
}

// OnReload registers a listener invoked after every publication.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload invokes all listeners.
func (cs *ConfigStore) dispatchReload() {
	cs.mu.RLock()
	hooks := make([]func(), len(cs.listeners))
	copy(hooks, cs.listeners)
	cs.mu.RUnlock()
	for _, fn := range hooks {
		go fn()
	}
}

// LoadFile reads a pool configuration from a YAML file, publishes it as
// the effective configuration, and returns it. Fields absent from the
// document keep the previously published values.
func (cs *ConfigStore) LoadFile(path string) (*threadpool.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("control: read config %s: %w", path, err)
	}
	cfg := cs.PoolConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("control: unmarshal config: %w", err)
	}
	cs.PublishPoolConfig(&cfg)
	return &cfg, nil
}

// SaveFile writes the currently published pool configuration to a YAML
// file.
func (cs *ConfigStore) SaveFile(path string) error {
	cfg := cs.PoolConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("control: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("control: write config %s: %w", path, err)
	}
	return nil
}
