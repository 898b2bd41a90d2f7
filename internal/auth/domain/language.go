package domain

// FallbackLanguageCode is used when neither the client hint nor "en" resolves
// to an active language.
const FallbackLanguageCode = "en"

type Language struct {
	ID         string
	Code       string // unique, e.g. "en"
	Name       string
	NativeName string
	Active     bool
}
