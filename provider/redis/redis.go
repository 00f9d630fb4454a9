package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/jsoncache/provider"
)

var (
	ErrNilClient = errors.New("redis provider: nil client")
	ErrEmptyKey  = errors.New("redis provider: empty key")
)

// Redis keeps the whole document under one key.
// SET replaces the value in a single step, so readers never see a partial document.
// The key never expires.
type Redis struct {
	rdb         goredis.UniversalClient
	key         string
	closeClient bool
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	Key         string
	CloseClient bool // set true only if this provider exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Key == "" {
		return nil, ErrEmptyKey
	}
	return &Redis{rdb: cfg.Client, key: cfg.Key, closeClient: cfg.CloseClient}, nil
}

func (p *Redis) Location() string { return "redis:" + p.key }

func (p *Redis) Get(ctx context.Context) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, p.key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // nothing persisted yet
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Put(ctx context.Context, doc []byte) error {
	return p.rdb.Set(ctx, p.key, doc, 0).Err()
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close() error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
