package models

// Caps for the translation passthrough.
const (
	MaxTranslateLen = 5000
	MaxLangLen      = 10
)

// TranslateRequest asks for a piece of widget text in another language.
type TranslateRequest struct {
	Text       Field `json:"text"`
	TargetLang Field `json:"target_lang"`
	SourceLang Field `json:"source_lang"`
}

// TranslateResponse carries the translated text and the language it came
// from. When translation is unavailable the original text is echoed back.
type TranslateResponse struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
}
