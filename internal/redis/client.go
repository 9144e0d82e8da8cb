// Package redis provides a wrapper around the go-redis client library
// for the rate limit store.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hexpath/internal/errors"
)

// Options tunes the connection pool. Zero values keep go-redis defaults.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DialTimeout     time.Duration
	UseTLS          bool
	ReadOnly        bool // cluster mode routing
}

func (o *Options) universal(endpoints []string, masterName string) *redis.UniversalOptions {
	if o == nil {
		o = &Options{}
	}

	u := &redis.UniversalOptions{
		Addrs:           endpoints,
		MasterName:      masterName,
		PoolSize:        o.PoolSize,
		MinIdleConns:    o.MinIdleConns,
		ConnMaxIdleTime: o.ConnMaxIdleTime,
		MaxRetries:      o.MaxRetries,
		DialTimeout:     o.DialTimeout,
		ReadOnly:        o.ReadOnly,
	}
	if o.UseTLS {
		u.TLSConfig = tlsConfig()
	}
	return u
}

// Connect picks a client for the given topology: sentinel when masterName
// is set, cluster for more than one endpoint, otherwise a single node
func Connect(endpoints []string, masterName string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required").
			WithMeta("master_name", masterName)
	}
	return redis.NewUniversalClient(opts.universal(endpoints, masterName)), nil
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}
	return redis.NewClient(opts.universal([]string{endpoint}, "").Simple()), nil
}

// NewClusterClient creates a cluster client, even for a single seed node
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}
	return redis.NewClusterClient(opts.universal(endpoints, "").Cluster()), nil
}

// NewFailoverClient creates a Redis client with Sentinel support
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("master_name", masterName, vb)
	if len(sentinelAddrs) == 0 {
		vb.RequiredField("sentinel_addrs")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return redis.NewFailoverClient(opts.universal(sentinelAddrs, masterName).Failover()), nil
}

func tlsConfig() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, // #nosec G402 self-signed certs
	}
}
