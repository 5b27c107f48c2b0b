package cache

import "time"

// RedisOption configures Redis cache.
type RedisOption func(*RedisConfig)

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	PoolTimeout  time.Duration
	MinIdleConns int
	Prefix       string
}

func WithRedisAddr(addr string) RedisOption {
	return func(c *RedisConfig) {
		c.Addr = addr
	}
}

func WithRedisPassword(password string) RedisOption {
	return func(c *RedisConfig) {
		c.Password = password
	}
}

func WithRedisDB(db int) RedisOption {
	return func(c *RedisConfig) {
		c.DB = db
	}
}

// WithRedisPool sets connection pool settings. Zero values keep the defaults.
func WithRedisPool(poolSize, minIdleConns int, timeout time.Duration) RedisOption {
	return func(c *RedisConfig) {
		if poolSize > 0 {
			c.PoolSize = poolSize
		}
		if minIdleConns > 0 {
			c.MinIdleConns = minIdleConns
		}
		if timeout > 0 {
			c.PoolTimeout = timeout
		}
	}
}

// WithRedisPrefix sets the namespace prepended to every key.
func WithRedisPrefix(prefix string) RedisOption {
	return func(c *RedisConfig) {
		c.Prefix = prefix
	}
}

// MemoryOption configures Memory cache.
type MemoryOption func(*MemoryConfig)

type MemoryConfig struct {
	MaxKeys int
}

// WithMemoryMaxSize caps the number of hashes kept; the least recently
// used one is evicted first.
func WithMemoryMaxSize(size int) MemoryOption {
	return func(c *MemoryConfig) {
		c.MaxKeys = size
	}
}
