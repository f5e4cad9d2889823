package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadReadsAllKeys(t *testing.T) {
	path := writeProperties(t, `
# agent settings
apiKey=org-key
projectToken = proj-token
wssUrl=https://wss.example.com/agent
debug=TRUE
requestTimeout=15s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "org-key", cfg.APIKey)
	assert.Equal(t, "proj-token", cfg.ProjectToken)
	assert.Equal(t, "https://wss.example.com/agent", cfg.WSSURL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeProperties(t, "apiKey=k\nprojectToken=p\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.WSSURL)
	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestLoadDebugOnlyForTrue(t *testing.T) {
	for _, value := range []string{"yes", "1", "on", ""} {
		cfg, err := FromMap(map[string]string{KeyDebug: value})
		require.NoError(t, err)
		assert.False(t, cfg.Debug, "debug=%q", value)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.properties"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigRead)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("WSS_APIKEY", "env-key")
	path := writeProperties(t, "apiKey=file-key\nprojectToken=p\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "p", cfg.ProjectToken)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{name: "complete", cfg: Config{APIKey: "k", ProjectToken: "p"}},
		{name: "missing api key", cfg: Config{ProjectToken: "p"}, want: ErrMissingAPIKey},
		{name: "missing project token", cfg: Config{APIKey: "k"}, want: ErrMissingProjectToken},
		{name: "both missing reports api key first", cfg: Config{}, want: ErrMissingAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFromMapTrimsBlankValues(t *testing.T) {
	cfg, err := FromMap(map[string]string{KeyAPIKey: "   ", KeyProjectToken: "p"})
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
}

func TestFromMapKeysAreCaseSensitive(t *testing.T) {
	cfg, err := FromMap(map[string]string{"APIKEY": "k", "ProjectToken": "p", "WSSURL": "https://x"})
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.ProjectToken)
	assert.Empty(t, cfg.WSSURL)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
}

func TestLoadRequestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration", value: "30s", want: 30 * time.Second},
		{name: "blank", value: "", want: DefaultRequestTimeout},
		{name: "zero", value: "0s", want: DefaultRequestTimeout},
		{name: "negative", value: "-5s", want: DefaultRequestTimeout},
		{name: "not a duration", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProperties(t, "apiKey=k\nprojectToken=p\nrequestTimeout="+tt.value+"\n")

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Nil(t, cfg)
				assert.ErrorIs(t, err, ErrConfigRead)
				assert.Contains(t, err.Error(), tt.value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.RequestTimeout)
		})
	}
}
