// =============================================================================
// WhiteSource CSV Agent - Configuration Module
// =============================================================================
//
// This module loads the agent configuration from a Java-style properties file
// (wss.properties by default). Values can be overridden by environment
// variables prefixed with WSS_ (e.g. WSS_APIKEY, WSS_PROJECTTOKEN).
//
// RECOGNIZED KEYS:
//   apiKey          - Organization API key (required)
//   projectToken    - Token of the project to update (required)
//   wssUrl          - Service URL override (optional)
//   debug           - "true" enables DEBUG output (optional)
//   requestTimeout  - HTTP timeout as a Go duration, e.g. "30s" (optional)
//
// The loaded Config is immutable and is passed explicitly to every stage.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magiconair/properties"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// DefaultFile is the properties file read when no --config flag is given.
const DefaultFile = "wss.properties"

// Property keys as they appear in wss.properties.
const (
	KeyAPIKey         = "apiKey"
	KeyProjectToken   = "projectToken"
	KeyWSSURL         = "wssUrl"
	KeyDebug          = "debug"
	KeyRequestTimeout = "requestTimeout"
)

// DefaultRequestTimeout bounds the single update request.
const DefaultRequestTimeout = 60 * time.Second

// knownKeys lists the recognized keys. Lookups are case-sensitive, so
// "APIKEY=" in the file does not set apiKey.
var knownKeys = []string{KeyAPIKey, KeyProjectToken, KeyWSSURL, KeyDebug, KeyRequestTimeout}

// envPrefix is prepended to upper-cased keys for environment overrides.
const envPrefix = "WSS"

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrConfigRead is returned when the properties file cannot be read.
	ErrConfigRead = errors.New("failed to read configuration")

	// ErrMissingAPIKey is returned by Validate when apiKey is blank.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrMissingProjectToken is returned by Validate when projectToken is blank.
	ErrMissingProjectToken = errors.New("missing project token")
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config holds the agent settings for one run.
type Config struct {
	// APIKey authenticates the organization against the service.
	APIKey string

	// ProjectToken identifies the project receiving the dependencies.
	ProjectToken string

	// WSSURL overrides the default service URL when non-empty.
	WSSURL string

	// Debug enables DEBUG log lines.
	Debug bool

	// RequestTimeout bounds the update request.
	RequestTimeout time.Duration
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Load reads the properties file at path and applies environment overrides.
//
// RETURNS:
//   - The loaded Config.
//   - An error wrapping ErrConfigRead if the file is missing or unreadable.
//
// Load does not check required keys; call Validate for that.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigRead, path, err)
	}

	return FromMap(props.Map())
}

// FromMap builds a Config from raw key/value pairs, applying defaults and
// WSS_* environment overrides. Keys are matched with their exact case and
// unknown keys are ignored.
//
// RETURNS:
//   - An error wrapping ErrConfigRead if requestTimeout is not a duration.
func FromMap(values map[string]string) (*Config, error) {
	v := newViper()

	// viper folds key case, so only exact-case matches are handed to it.
	raw := make(map[string]any, len(knownKeys))
	for _, key := range knownKeys {
		if val, ok := values[key]; ok {
			raw[key] = val
		}
	}
	if err := v.MergeConfigMap(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
	}

	timeout, err := requestTimeout(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		APIKey:         strings.TrimSpace(v.GetString(KeyAPIKey)),
		ProjectToken:   strings.TrimSpace(v.GetString(KeyProjectToken)),
		WSSURL:         strings.TrimSpace(v.GetString(KeyWSSURL)),
		Debug:          strings.EqualFold(strings.TrimSpace(v.GetString(KeyDebug)), "true"),
		RequestTimeout: timeout,
	}, nil
}

// requestTimeout parses the requestTimeout value. Blank, zero and negative
// values select DefaultRequestTimeout.
func requestTimeout(v *viper.Viper) (time.Duration, error) {
	value := strings.TrimSpace(v.GetString(KeyRequestTimeout))
	if value == "" {
		return DefaultRequestTimeout, nil
	}

	timeout, err := cast.ToDurationE(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q: %w", ErrConfigRead, KeyRequestTimeout, value, err)
	}
	if timeout <= 0 {
		return DefaultRequestTimeout, nil
	}
	return timeout, nil
}

// newViper returns a viper instance with defaults registered for every key,
// which is what lets AutomaticEnv resolve WSS_* variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyProjectToken, "")
	v.SetDefault(KeyWSSURL, "")
	v.SetDefault(KeyDebug, "false")
	v.SetDefault(KeyRequestTimeout, DefaultRequestTimeout.String())

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the required keys, API key first.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.ProjectToken == "" {
		return ErrMissingProjectToken
	}
	return nil
}
