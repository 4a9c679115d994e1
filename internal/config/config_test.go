package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_DURATION", "30m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/places")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/places", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080"},
		{name: "ip address", input: "127.0.0.1:9000"},
		{name: "empty host", input: ":8080"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}

func TestParseJSON_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {
			"token_sign_key": "json-key",
			"token_issuer": "json-issuer",
			"token_duration": "2h",
			"bcrypt_cost": 10
		},
		"storage": {
			"db": {"dsn": "postgres://json/places"},
			"files": {"images_dir": "/var/images"}
		},
		"server": {
			"http_address": "0.0.0.0:8081",
			"request_timeout": "45s"
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "postgres://json/places", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/images", cfg.Storage.Files.ImagesDir)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "garbage", input: `"eleventy"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultBcryptCost, cfg.App.BcryptCost)
	assert.Equal(t, defaultImagesDir, cfg.Storage.Files.ImagesDir)
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = "custom:1234"
	cfg.App.TokenDuration = 5 * time.Minute
	cfg.applyDefaults()

	assert.Equal(t, "custom:1234", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.App.TokenDuration)
}

func TestValidate(t *testing.T) {
	valid := &StructuredConfig{}
	valid.Storage.DB.DSN = "postgres://localhost/places"
	valid.App.TokenSignKey = "secret"
	require.NoError(t, valid.validate())

	noDSN := &StructuredConfig{}
	noDSN.App.TokenSignKey = "secret"
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noKey := &StructuredConfig{}
	noKey.Storage.DB.DSN = "postgres://localhost/places"
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)
}
