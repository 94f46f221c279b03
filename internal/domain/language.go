package domain

// Language is the stored language preference of a user.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageFrench  Language = "french"
)

// IsFrench reports whether l selects French content. Every other value,
// including the empty preference, falls back to English.
func (l Language) IsFrench() bool {
	return l == LanguageFrench
}

func (l Language) String() string {
	if l.IsFrench() {
		return string(LanguageFrench)
	}
	return string(LanguageEnglish)
}
