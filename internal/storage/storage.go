// Package storage provides the key-value backends the persistence adapter
// writes its snapshots to.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// KV is a string key-value store
type KV interface {
	// Get returns the value under key; found is false when the key is absent
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping checks the backend is reachable
	Ping(ctx context.Context) error
}

// Supported drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// ValidDriver reports whether driver names a supported backend
func ValidDriver(driver string) bool {
	switch strings.ToLower(driver) {
	case DriverMemory, DriverSQLite, DriverPostgres, "postgresql", DriverRedis:
		return true
	}
	return false
}

// prefixed wraps a KV so every key is namespaced
type prefixed struct {
	kv     KV
	prefix string
}

// WithPrefix namespaces all keys of kv under prefix
func WithPrefix(kv KV, prefix string) KV {
	if prefix == "" {
		return kv
	}
	return &prefixed{kv: kv, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.kv.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.kv.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.kv.Delete(ctx, p.prefix+key)
}

func (p *prefixed) Ping(ctx context.Context) error {
	return p.kv.Ping(ctx)
}

func (p *prefixed) String() string {
	return fmt.Sprintf("prefixed(%q)", p.prefix)
}
