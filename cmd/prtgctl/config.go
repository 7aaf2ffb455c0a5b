package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	prtg "github.com/CC-Digital-Innovation/go-prtg"
	"github.com/CC-Digital-Innovation/go-prtg/observability"
)

const (
	envPrefix = "PRTG"

	keyBaseURL            = "Base_URL"
	keyUsername           = "Username"
	keyPassword           = "Password"
	keyPasshash           = "Passhash"
	keyAPIToken           = "API_Token"
	keyMaxRetries         = "Max_Retries"
	keyRetryWaitTime      = "Retry_Wait_Time"
	keyTimeout            = "Timeout"
	keyConfirmDeadline    = "Confirm_Deadline"
	keyRateLimitPerMinute = "Rate_Limit_Per_Minute"
	keyInsecureTLS        = "Insecure_TLS"
	keyCABundleFile       = "CA_Bundle_File"
	keyLogLevel           = "Log_Level"
	keyLogFormat          = "Log_Format"
)

// cliConfig is the resolved prtgctl configuration. Values come from the
// config file and PRTG_* environment variables (key "Base_URL" maps to
// PRTG_BASE_URL, and so on).
type cliConfig struct {
	BaseURL  string
	Username string
	Password string
	Passhash string
	APIToken string

	MaxRetries         int
	RetryWaitTime      time.Duration
	Timeout            time.Duration
	ConfirmDeadline    time.Duration
	RateLimitPerMinute int

	InsecureTLS  bool
	CABundleFile string

	LogLevel  string
	LogFormat string
}

// String renders the configuration for debug output. Credential values are
// replaced by REDACTED; they must never reach a terminal or a log.
func (c *cliConfig) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", keyBaseURL, c.BaseURL)
	fmt.Fprintf(&b, "%s: %s\n", keyUsername, c.Username)
	fmt.Fprintf(&b, "%s: %s\n", keyPassword, redactSecret(c.Password))
	fmt.Fprintf(&b, "%s: %s\n", keyPasshash, redactSecret(c.Passhash))
	fmt.Fprintf(&b, "%s: %s\n", keyAPIToken, redactSecret(c.APIToken))
	fmt.Fprintf(&b, "%s: %d\n", keyMaxRetries, c.MaxRetries)
	fmt.Fprintf(&b, "%s: %s\n", keyRetryWaitTime, c.RetryWaitTime)
	fmt.Fprintf(&b, "%s: %s\n", keyTimeout, c.Timeout)
	fmt.Fprintf(&b, "%s: %s\n", keyConfirmDeadline, c.ConfirmDeadline)
	fmt.Fprintf(&b, "%s: %d\n", keyRateLimitPerMinute, c.RateLimitPerMinute)
	fmt.Fprintf(&b, "%s: %t\n", keyInsecureTLS, c.InsecureTLS)
	fmt.Fprintf(&b, "%s: %s\n", keyCABundleFile, c.CABundleFile)
	fmt.Fprintf(&b, "%s: %s\n", keyLogLevel, c.LogLevel)
	fmt.Fprintf(&b, "%s: %s\n", keyLogFormat, c.LogFormat)
	return b.String()
}

func redactSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	return "REDACTED"
}

// redacted returns a copy safe to serialize: credential values replaced,
// everything else intact.
func (c *cliConfig) redacted() cliConfig {
	out := *c
	out.Password = redactSecret(c.Password)
	out.Passhash = redactSecret(c.Passhash)
	out.APIToken = redactSecret(c.APIToken)
	return out
}

// credentials picks the authentication strategy from the configured values.
// An API token wins over a passhash, a passhash over a password, matching
// the order PRTG itself recommends.
func (c *cliConfig) credentials() (prtg.Credentials, error) {
	switch {
	case c.APIToken != "":
		return prtg.TokenAuth{Token: c.APIToken}, nil
	case c.Username != "" && c.Passhash != "":
		return prtg.PasshashAuth{Username: c.Username, Passhash: c.Passhash}, nil
	case c.Username != "" && c.Password != "":
		return prtg.BasicAuth{Username: c.Username, Password: c.Password}, nil
	}
	return nil, errors.New("no credentials configured: set PRTG_API_TOKEN, or PRTG_USERNAME together with PRTG_PASSHASH or PRTG_PASSWORD")
}

// loadConfig reads the config file and PRTG_* environment variables. A
// missing config file is fine unless one was named explicitly; environment
// variables override file values either way.
func loadConfig(cfgFile string) (*cliConfig, error) {
	v := viper.New()

	v.SetDefault(keyMaxRetries, prtg.DefaultMaxRetries)
	v.SetDefault(keyRetryWaitTime, prtg.DefaultRetryWaitTime)
	v.SetDefault(keyTimeout, prtg.DefaultTimeout)
	v.SetDefault(keyConfirmDeadline, prtg.DefaultConfirmDeadline)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFormat, "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".prtgctl")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	return &cliConfig{
		BaseURL:            v.GetString(keyBaseURL),
		Username:           v.GetString(keyUsername),
		Password:           v.GetString(keyPassword),
		Passhash:           v.GetString(keyPasshash),
		APIToken:           v.GetString(keyAPIToken),
		MaxRetries:         v.GetInt(keyMaxRetries),
		RetryWaitTime:      v.GetDuration(keyRetryWaitTime),
		Timeout:            v.GetDuration(keyTimeout),
		ConfirmDeadline:    v.GetDuration(keyConfirmDeadline),
		RateLimitPerMinute: v.GetInt(keyRateLimitPerMinute),
		InsecureTLS:        v.GetBool(keyInsecureTLS),
		CABundleFile:       v.GetString(keyCABundleFile),
		LogLevel:           v.GetString(keyLogLevel),
		LogFormat:          v.GetString(keyLogFormat),
	}, nil
}

// newLogger builds a zap logger from the configured level and format.
// Output goes to stderr so table and JSON output on stdout stay parseable.
func newLogger(cfg *cliConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	var zc zap.Config
	switch cfg.LogFormat {
	case "console", "":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, errors.Newf("invalid log format %q: must be \"console\" or \"json\"", cfg.LogFormat)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// buildClient turns the resolved configuration into a connected client. The
// constructor validates the connection, so any address or credential problem
// surfaces here rather than on the first real command.
func buildClient(ctx context.Context, cfg *cliConfig, logger *zap.Logger) (*prtg.Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("no server configured: set PRTG_BASE_URL or base_url in the config file")
	}

	creds, err := cfg.credentials()
	if err != nil {
		return nil, err
	}

	clientCfg := &prtg.ClientConfig{
		BaseURL:            cfg.BaseURL,
		Credentials:        creds,
		MaxRetries:         cfg.MaxRetries,
		RetryWaitTime:      cfg.RetryWaitTime,
		Timeout:            cfg.Timeout,
		ConfirmDeadline:    cfg.ConfirmDeadline,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		InsecureSkipVerify: cfg.InsecureTLS,
		Logger:             observability.NewZapLogger(logger),
	}

	if cfg.CABundleFile != "" {
		pem, err := os.ReadFile(cfg.CABundleFile)
		if err != nil {
			return nil, errors.Wrap(err, "read CA bundle")
		}
		clientCfg.TrustBundle = pem
	}

	return prtg.NewWithConfig(ctx, clientCfg)
}
