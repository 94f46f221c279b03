package ioc

import (
	"github.com/canada-ca/tracker-sub005/internal/pkg/logger"
	"github.com/canada-ca/tracker-sub005/internal/service/i18n"
	"github.com/canada-ca/tracker-sub005/internal/service/notify"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
)

// App is everything a caller needs to send notifications.
type App struct {
	Logger     *elog.Component
	Bundle     *i18n.Bundle
	Dispatcher notify.Dispatcher
}

func InitApp(cfg Config, reg prometheus.Registerer) (*App, error) {
	l, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, l, reg)
}

func newApp(cfg Config, l *elog.Component, reg prometheus.Registerer) (*App, error) {
	client, err := InitNotifyClient(cfg.Notify.Client, l, reg)
	if err != nil {
		return nil, err
	}
	bundle, err := InitBundle()
	if err != nil {
		return nil, err
	}
	return &App{
		Logger:     l,
		Bundle:     bundle,
		Dispatcher: InitDispatcher(cfg.Notify.Templates, client, l),
	}, nil
}

// Translator returns the translator for a stored language preference or a
// language tag.
func (a *App) Translator(lang string) i18n.Translator {
	return a.Bundle.For(i18n.ParseLanguage(lang))
}

func (a *App) Close() {
	_ = a.Logger.Flush()
}
