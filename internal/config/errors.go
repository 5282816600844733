package config

import "fmt"

// ConfigurationError indicates the deployment is missing a setting it cannot run without.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %s", e.Key, e.Reason)
}
