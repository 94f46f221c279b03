package i18n

import (
	"strings"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var french = map[domain.MessageKey]string{
	domain.MsgUnableToAuthenticate:     "Impossible de s'authentifier. Veuillez réessayer.",
	domain.MsgUnableToSendTfaText:      "Impossible d'envoyer le message d'authentification à deux facteurs. Veuillez réessayer.",
	domain.MsgUnableToSendVerification: "Impossible d'envoyer l'email de vérification. Veuillez réessayer.",
	domain.MsgUnableToSendReset:        "Impossible d'envoyer l'e-mail de réinitialisation du mot de passe. Veuillez réessayer.",
	domain.MsgUnableToSendOrgInvite:    "Impossible d'envoyer l'e-mail d'invitation à l'org. Veuillez réessayer.",
}

// Bundle holds the English and French catalogs. It is read only once built
// and safe for concurrent use.
type Bundle struct {
	cat catalog.Catalog
}

func NewBundle() (*Bundle, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range domain.MessageKeys() {
		if err := b.SetString(language.English, string(key), string(key)); err != nil {
			return nil, err
		}
		fr, ok := french[key]
		if !ok {
			continue
		}
		if err := b.SetString(language.French, string(key), fr); err != nil {
			return nil, err
		}
	}
	return &Bundle{cat: b}, nil
}

// For returns a Translator bound to lang.
func (b *Bundle) For(lang domain.Language) Translator {
	tag := language.English
	if lang.IsFrench() {
		tag = language.French
	}
	return &translator{p: message.NewPrinter(tag, message.Catalog(b.cat))}
}

type translator struct {
	p *message.Printer
}

// T renders key; a key without a catalog entry renders as itself.
func (t *translator) T(key domain.MessageKey) string {
	return t.p.Sprintf(string(key))
}

// ParseLanguage maps a stored preference or a BCP 47 tag to a Language.
func ParseLanguage(s string) domain.Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(domain.LanguageFrench), "francais", "français":
		return domain.LanguageFrench
	case "", string(domain.LanguageEnglish):
		return domain.LanguageEnglish
	}
	tag, err := language.Parse(s)
	if err != nil {
		return domain.LanguageEnglish
	}
	if base, _ := tag.Base(); base.String() == "fr" {
		return domain.LanguageFrench
	}
	return domain.LanguageEnglish
}
