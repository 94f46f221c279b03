package ioc

import (
	"github.com/canada-ca/tracker-sub005/internal/service/i18n"
	"github.com/canada-ca/tracker-sub005/internal/service/notify"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

func InitBundle() (*i18n.Bundle, error) {
	return i18n.NewBundle()
}

// InitDispatcher warns about unset template ids but does not fail: a send
// that needs one fails at the provider.
func InitDispatcher(templates notify.Templates, client provider.Client, l *elog.Component) notify.Dispatcher {
	if err := CheckTemplates(templates); err != nil {
		l.Warn("notification templates are incomplete", elog.FieldErr(err))
	}
	return notify.NewDispatcher(client, templates, l.With(elog.FieldComponent("notify")))
}
