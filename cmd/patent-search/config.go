// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/patent-search/internal/logger"
	"github.com/pdiddy/patent-search/pkg/types"
)

// loadConfig reads settings from viper (flags, PATENT_SEARCH_* environment
// variables, then the config file) and fills in defaults.
func loadConfig(v *viper.Viper) types.Config {
	cfg := types.Config{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:            v.GetDuration("search.timeout"),
				UserAgent:          v.GetString("search.user_agent"),
				InsecureSkipVerify: v.GetBool("search.insecure_skip_verify"),
			},
			BaseURL:           v.GetString("search.base_url"),
			Dataset:           v.GetString("search.dataset"),
			Version:           v.GetString("search.version"),
			RequestsPerSecond: v.GetFloat64("search.requests_per_second"),
			Burst:             v.GetInt("search.burst"),
			MaxRetries:        v.GetInt("search.max_retries"),
		},
		Server: types.ServerConfig{
			Addr:            v.GetString("server.addr"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			SessionTTL:      v.GetDuration("server.session_ttl"),
			NoticeTTL:       v.GetDuration("server.notice_ttl"),
		},
		Logging: types.LoggingConfig{
			Env:   v.GetString("logging.env"),
			Level: v.GetString("logging.level"),
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// setup loads the config and returns a context carrying the logger.
func setup(ctx context.Context) (context.Context, types.Config, *zap.Logger, error) {
	cfg := loadConfig(viper.GetViper())
	log, err := logger.New(cfg.Logging.Env, cfg.Logging.Level)
	if err != nil {
		return ctx, cfg, nil, err
	}
	return logger.WithContext(ctx, log), cfg, log, nil
}
