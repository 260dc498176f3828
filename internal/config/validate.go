package config

import (
	"fmt"
	"regexp"
)

var channelNameRe = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Notifications.validate(); err != nil {
		return fmt.Errorf("notifications: %w", err)
	}

	return nil
}

func (n *NotificationsConfig) validate() error {
	// The channel name is interpolated into LISTEN, so it must be a plain identifier.
	if !channelNameRe.MatchString(n.Channel) {
		return fmt.Errorf("channel %q is not a valid identifier", n.Channel)
	}
	if n.SubscriberBuffer <= 0 {
		return fmt.Errorf("subscriber_buffer must be > 0 (got %d)", n.SubscriberBuffer)
	}
	if n.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be > 0 (got %v)", n.HeartbeatInterval)
	}
	return nil
}
