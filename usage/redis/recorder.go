package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/AirHelp/numstats/stat"
)

type Config struct {
	Hosts     []string `yaml:"hosts"`
	KeyPrefix string   `yaml:"key_prefix"`
}

// Recorder keeps one counter per operation, sharded over a ring of hosts.
type Recorder struct {
	client    *redis.Ring
	keyPrefix string
}

func New(ctx context.Context, config *Config) (*Recorder, error) {
	if len(config.Hosts) == 0 {
		return &Recorder{}, fmt.Errorf("hosts list cannot be empty")
	}

	if config.KeyPrefix == "" {
		return &Recorder{}, fmt.Errorf("key prefix cannot be empty")
	}

	ringOpts := make(map[string]string)

	for i, addr := range config.Hosts {
		key := fmt.Sprintf("host%d", i+1)
		ringOpts[key] = addr
	}

	c := redis.NewRing(&redis.RingOptions{
		Addrs: ringOpts,
	})

	err := c.ForEachShard(ctx, func(ctx context.Context, shard *redis.Client) error {
		res := shard.Ping(ctx)
		err := res.Err()

		if err != nil {
			zap.S().Errorf("failed to connect to Redis instance: %v", shard.Options().Addr)
			return err
		}

		zap.S().Debugf("successfully connected to Redis instance: %v, result: %v", shard.Options().Addr, res.Val())
		return nil
	})

	if err != nil {
		_ = c.Close()
		return &Recorder{}, err
	}

	return &Recorder{
		client:    c,
		keyPrefix: config.KeyPrefix,
	}, nil
}

func (r *Recorder) Kind() string {
	return "redis"
}

func (r *Recorder) Record(ctx context.Context, op stat.Operation) error {
	return r.client.Incr(ctx, r.key(op)).Err()
}

// Count returns how many computations of op were recorded, 0 when none.
func (r *Recorder) Count(ctx context.Context, op stat.Operation) (int64, error) {
	n, err := r.client.Get(ctx, r.key(op)).Int64()

	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return n, err
}

func (r *Recorder) Close() error {
	if r.client == nil {
		return nil
	}

	return r.client.Close()
}

func (r *Recorder) key(op stat.Operation) string {
	return r.keyPrefix + string(op)
}
