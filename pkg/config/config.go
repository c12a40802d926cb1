package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return errors.New("invalid duration")
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(b), err)
	}
	return nil
}

// SelfDependencyPolicy decides whether a model may be declared as depending on itself.
type SelfDependencyPolicy string

const (
	// SelfDependencyAllow accepts parent == child.
	SelfDependencyAllow SelfDependencyPolicy = "allow"
	// SelfDependencyReject refuses parent == child outright.
	SelfDependencyReject SelfDependencyPolicy = "reject"
	// SelfDependencyRejectSameVersion accepts parent == child only between two distinct,
	// explicitly given versions of that model.
	SelfDependencyRejectSameVersion SelfDependencyPolicy = "reject_same_version"
)

func (p SelfDependencyPolicy) IsValid() bool {
	switch p {
	case SelfDependencyAllow, SelfDependencyReject, SelfDependencyRejectSameVersion:
		return true
	default:
		return false
	}
}

type LineageConfig struct {
	SelfDependency    SelfDependencyPolicy `koanf:"self_dependency"`
	MaxTraversalDepth int                  `koanf:"max_traversal_depth"`
}

type Config struct {
	Address         string        `koanf:"address"`
	LogLevel        string        `koanf:"log_level"`
	LogFormat       string        `koanf:"log_format"`
	ShutdownTimeout Duration      `koanf:"shutdown_timeout"`
	StoreURL        string        `koanf:"store_url"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	SlowThreshold   Duration      `koanf:"slow_threshold"`
	Version         string        `koanf:"version"`
	Lineage         LineageConfig `koanf:"lineage"`
}

func (c *Config) Validate() error {
	if c.StoreURL == "" {
		return errors.New("store_url must be set")
	}

	if !c.Lineage.SelfDependency.IsValid() {
		return fmt.Errorf(
			"invalid lineage.self_dependency %q, expected one of [%s %s %s]",
			c.Lineage.SelfDependency,
			SelfDependencyAllow, SelfDependencyReject, SelfDependencyRejectSameVersion,
		)
	}

	if c.Lineage.MaxTraversalDepth < 0 {
		return errors.New("lineage.max_traversal_depth must not be negative")
	}

	return nil
}
