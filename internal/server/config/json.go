package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/unigate/internal/flagx"
	"github.com/dmitrijs2005/unigate/internal/timex"
)

// JsonConfig is the JSON file representation of Config. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted. Keys
// missing from the file keep their current values.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string `json:"endpoint_addr_http"`
	DatabaseDSN      string `json:"database_dsn"`
	RedisAddr        string `json:"redis_addr"`
	LogLevel         string `json:"log_level"`

	SecretKey                   string         `json:"secret_key"`
	SecretKeyID                 string         `json:"secret_key_id"`
	RetiredSecretKeys           []string       `json:"retired_secret_keys"`
	KeyRotationGrace            timex.Duration `json:"key_rotation_grace"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`

	PasswordHashMemoryKiB  uint32 `json:"password_hash_memory_kib"`
	PasswordHashIterations uint32 `json:"password_hash_iterations"`
	PasswordHashThreads    uint8  `json:"password_hash_threads"`
	UsernameMaxAttempts    int    `json:"username_max_attempts"`

	DeliveryMaxRetries  uint64         `json:"delivery_max_retries"`
	DeliveryBaseBackoff timex.Duration `json:"delivery_base_backoff"`
	DeliveryMaxBackoff  timex.Duration `json:"delivery_max_backoff"`

	SMTPHost       string         `json:"smtp_host"`
	SMTPPort       int            `json:"smtp_port"`
	SMTPUsername   string         `json:"smtp_username"`
	SMTPPassword   string         `json:"smtp_password"`
	SMTPFrom       string         `json:"smtp_from"`
	SMTPFromName   string         `json:"smtp_from_name"`
	SMTPEncryption string         `json:"smtp_encryption"`
	SMTPTimeout    timex.Duration `json:"smtp_timeout"`

	LoginRateLimit float64 `json:"login_rate_limit"`
	LoginRateBurst int     `json:"login_rate_burst"`

	BootstrapAdminUsername string `json:"bootstrap_admin_username"`
	BootstrapAdminPassword string `json:"bootstrap_admin_password"`
	BootstrapAdminAddress  string `json:"bootstrap_admin_address"`
}

func toJSON(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:            c.EndpointAddrGRPC,
		EndpointAddrHTTP:            c.EndpointAddrHTTP,
		DatabaseDSN:                 c.DatabaseDSN,
		RedisAddr:                   c.RedisAddr,
		LogLevel:                    c.LogLevel,
		SecretKey:                   c.SecretKey,
		SecretKeyID:                 c.SecretKeyID,
		RetiredSecretKeys:           c.RetiredSecretKeys,
		KeyRotationGrace:            timex.Duration{Duration: c.KeyRotationGrace},
		AccessTokenValidityDuration: timex.Duration{Duration: c.AccessTokenValidityDuration},
		PasswordHashMemoryKiB:       c.PasswordHashMemoryKiB,
		PasswordHashIterations:      c.PasswordHashIterations,
		PasswordHashThreads:         c.PasswordHashThreads,
		UsernameMaxAttempts:         c.UsernameMaxAttempts,
		DeliveryMaxRetries:          c.DeliveryMaxRetries,
		DeliveryBaseBackoff:         timex.Duration{Duration: c.DeliveryBaseBackoff},
		DeliveryMaxBackoff:          timex.Duration{Duration: c.DeliveryMaxBackoff},
		SMTPHost:                    c.SMTPHost,
		SMTPPort:                    c.SMTPPort,
		SMTPUsername:                c.SMTPUsername,
		SMTPPassword:                c.SMTPPassword,
		SMTPFrom:                    c.SMTPFrom,
		SMTPFromName:                c.SMTPFromName,
		SMTPEncryption:              c.SMTPEncryption,
		SMTPTimeout:                 timex.Duration{Duration: c.SMTPTimeout},
		LoginRateLimit:              c.LoginRateLimit,
		LoginRateBurst:              c.LoginRateBurst,
		BootstrapAdminUsername:      c.BootstrapAdminUsername,
		BootstrapAdminPassword:      c.BootstrapAdminPassword,
		BootstrapAdminAddress:       c.BootstrapAdminAddress,
	}
}

func (j *JsonConfig) apply(c *Config) {
	c.EndpointAddrGRPC = j.EndpointAddrGRPC
	c.EndpointAddrHTTP = j.EndpointAddrHTTP
	c.DatabaseDSN = j.DatabaseDSN
	c.RedisAddr = j.RedisAddr
	c.LogLevel = j.LogLevel
	c.SecretKey = j.SecretKey
	c.SecretKeyID = j.SecretKeyID
	c.RetiredSecretKeys = j.RetiredSecretKeys
	c.KeyRotationGrace = j.KeyRotationGrace.Duration
	c.AccessTokenValidityDuration = j.AccessTokenValidityDuration.Duration
	c.PasswordHashMemoryKiB = j.PasswordHashMemoryKiB
	c.PasswordHashIterations = j.PasswordHashIterations
	c.PasswordHashThreads = j.PasswordHashThreads
	c.UsernameMaxAttempts = j.UsernameMaxAttempts
	c.DeliveryMaxRetries = j.DeliveryMaxRetries
	c.DeliveryBaseBackoff = j.DeliveryBaseBackoff.Duration
	c.DeliveryMaxBackoff = j.DeliveryMaxBackoff.Duration
	c.SMTPHost = j.SMTPHost
	c.SMTPPort = j.SMTPPort
	c.SMTPUsername = j.SMTPUsername
	c.SMTPPassword = j.SMTPPassword
	c.SMTPFrom = j.SMTPFrom
	c.SMTPFromName = j.SMTPFromName
	c.SMTPEncryption = j.SMTPEncryption
	c.SMTPTimeout = j.SMTPTimeout.Duration
	c.LoginRateLimit = j.LoginRateLimit
	c.LoginRateBurst = j.LoginRateBurst
	c.BootstrapAdminUsername = j.BootstrapAdminUsername
	c.BootstrapAdminPassword = j.BootstrapAdminPassword
	c.BootstrapAdminAddress = j.BootstrapAdminAddress
}

// parseJson overlays the file named by -c/-config in args, if any.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	j := toJSON(config)
	if err := json.Unmarshal(file, j); err != nil {
		return err
	}
	j.apply(config)
	return nil
}
