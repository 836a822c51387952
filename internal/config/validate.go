package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Moderation.LockTTL <= 0 {
		return fmt.Errorf("moderation.lock_ttl must be > 0 (got %v)", c.Moderation.LockTTL)
	}
	if c.Moderation.QueueSize <= 0 {
		return fmt.Errorf("moderation.queue_size must be > 0 (got %d)", c.Moderation.QueueSize)
	}

	if c.Archive.MaxAge <= 0 {
		return fmt.Errorf("archive.max_age must be > 0 (got %v)", c.Archive.MaxAge)
	}

	if c.Cache.QagListTTL <= 0 {
		return fmt.Errorf("cache.qag_list_ttl must be > 0 (got %v)", c.Cache.QagListTTL)
	}
	if c.Cache.DerivedListTTL <= 0 {
		return fmt.Errorf("cache.derived_list_ttl must be > 0 (got %v)", c.Cache.DerivedListTTL)
	}

	return nil
}

// RedisEnabled reports whether a Redis backing store is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}
