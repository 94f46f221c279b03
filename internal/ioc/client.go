package ioc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
	"github.com/canada-ca/tracker-sub005/internal/service/provider/breaker"
	"github.com/canada-ca/tracker-sub005/internal/service/provider/console"
	"github.com/canada-ca/tracker-sub005/internal/service/provider/gcnotify"
	"github.com/canada-ca/tracker-sub005/internal/service/provider/metrics"
	"github.com/canada-ca/tracker-sub005/internal/service/provider/routing"
	"github.com/canada-ca/tracker-sub005/internal/service/provider/sms"
	"github.com/canada-ca/tracker-sub005/internal/service/provider/tracing"
	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	clientGCNotify = "gcnotify"
	clientAliyun   = "aliyun"
	clientTencent  = "tencent"
	clientConsole  = "console"
)

// InitNotifyClient builds the client for each channel, decorates it and
// routes email and SMS to their own client.
func InitNotifyClient(cfg ClientConfig, l *elog.Component, reg prometheus.Registerer) (provider.Client, error) {
	built := make(map[string]provider.Client, 2)
	get := func(name string, allowed ...string) (provider.Client, error) {
		if name == "" {
			return nil, nil
		}
		if c, ok := built[name]; ok {
			return c, nil
		}
		if !contains(allowed, name) {
			return nil, fmt.Errorf("%w: unknown client %q", errs.ErrProviderNotConfigured, name)
		}
		raw, err := newClient(name, cfg, l)
		if err != nil {
			return nil, err
		}
		c := decorate(name, raw, cfg.Breaker, reg)
		built[name] = c
		return c, nil
	}

	email, err := get(cfg.Email, clientGCNotify, clientConsole)
	if err != nil {
		return nil, fmt.Errorf("email client: %w", err)
	}
	smsClient, err := get(cfg.SMS, clientGCNotify, clientAliyun, clientTencent, clientConsole)
	if err != nil {
		return nil, fmt.Errorf("sms client: %w", err)
	}
	return routing.NewRouter(email, smsClient), nil
}

func newClient(name string, cfg ClientConfig, l *elog.Component) (provider.Client, error) {
	switch name {
	case clientGCNotify:
		return gcnotify.NewClient(cfg.GCNotify.APIKey,
			gcnotify.WithBaseURL(cfg.GCNotify.BaseURL),
			gcnotify.WithHTTPClient(&http.Client{Timeout: httpTimeout(cfg.GCNotify.Timeout)}),
		)
	case clientAliyun:
		return sms.NewAliyunSMS(cfg.Aliyun.RegionID, cfg.Aliyun.AccessKeyID, cfg.Aliyun.AccessKeySecret, cfg.Aliyun.SignName)
	case clientTencent:
		return sms.NewTencentSMS(cfg.Tencent.RegionID, cfg.Tencent.SecretID, cfg.Tencent.SecretKey,
			cfg.Tencent.AppID, cfg.Tencent.SignName)
	case clientConsole:
		return console.NewClient(l.With(elog.FieldComponent(clientConsole))), nil
	default:
		return nil, fmt.Errorf("%w: unknown client %q", errs.ErrProviderNotConfigured, name)
	}
}

// decorate wraps raw as tracing(metrics(breaker(raw))).
func decorate(name string, raw provider.Client, bcfg BreakerConfig, reg prometheus.Registerer) provider.Client {
	c := raw
	if bcfg.Enabled {
		c = breaker.NewClient(c, newBreaker(bcfg))
	}
	c = metrics.NewClient(name, c, reg)
	return tracing.NewClient(c, name)
}

func newBreaker(cfg BreakerConfig) circuitbreaker.CircuitBreaker {
	var opts []sre.Option
	if cfg.Success > 0 {
		opts = append(opts, sre.WithSuccess(cfg.Success))
	}
	if cfg.Request > 0 {
		opts = append(opts, sre.WithRequest(cfg.Request))
	}
	if cfg.Window > 0 {
		opts = append(opts, sre.WithWindow(cfg.Window))
	}
	if cfg.Bucket > 0 {
		opts = append(opts, sre.WithBucket(cfg.Bucket))
	}
	return sre.NewBreaker(opts...)
}

// httpTimeout never returns an unbounded timeout.
func httpTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return gcnotify.DefaultTimeout
	}
	return d
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
