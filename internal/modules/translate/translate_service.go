package translate

import (
	"context"

	"quote-and-translate/internal/models"

	"go.uber.org/zap"
)

// Translator is the machine-translation collaborator. It returns the
// translated text and the resolved source language.
type Translator interface {
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, string, error)
}

// ServiceInterface defines the translate module's business surface.
type ServiceInterface interface {
	Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResponse, error)
}

type service struct {
	translator Translator
	logger     *zap.Logger
}

func NewService(translator Translator, logger *zap.Logger) ServiceInterface {
	return &service{
		translator: translator,
		logger:     logger,
	}
}

// Translate bounds the input, fills language defaults, and calls the
// translator. A translator failure is not the caller's problem: the widget
// keeps working in the source language, so the original text is echoed back.
func (s *service) Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResponse, error) {
	text := req.Text.Bounded(models.MaxTranslateLen)
	targetLang := req.TargetLang.Bounded(models.MaxLangLen)
	if targetLang == "" {
		targetLang = "en"
	}
	sourceLang := req.SourceLang.Bounded(models.MaxLangLen)
	if sourceLang == "" {
		sourceLang = "auto"
	}

	if text == "" {
		return nil, models.ErrTextRequired
	}

	translated, detected, err := s.translator.TranslateText(ctx, text, sourceLang, targetLang)
	if err != nil {
		s.logger.Warn("translate failed", zap.Error(err))
		return &models.TranslateResponse{Text: text, SourceLanguage: sourceLang}, nil
	}

	return &models.TranslateResponse{Text: translated, SourceLanguage: detected}, nil
}
