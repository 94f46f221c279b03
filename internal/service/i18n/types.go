package i18n

import "github.com/canada-ca/tracker-sub005/internal/domain"

// Translator renders message keys in the locale it was created for.
//
//go:generate mockgen -source=./types.go -destination=./mocks/translator.mock.go -package=i18nmocks Translator
type Translator interface {
	T(key domain.MessageKey) string
}
