package translator

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstranslate "github.com/aws/aws-sdk-go-v2/service/translate"
)

// Client wraps Amazon Translate for the translate module.
type Client struct {
	api *awstranslate.Client
}

func NewClient(cfg aws.Config) *Client {
	return &Client{api: awstranslate.NewFromConfig(cfg)}
}

// TranslateText translates text and reports the language it was translated
// from (the detected one when sourceLang is "auto").
func (c *Client) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, string, error) {
	out, err := c.api.TranslateText(ctx, &awstranslate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(sourceLang),
		TargetLanguageCode: aws.String(targetLang),
	})
	if err != nil {
		return "", "", err
	}

	translated := aws.ToString(out.TranslatedText)
	if translated == "" {
		translated = text
	}
	detected := aws.ToString(out.SourceLanguageCode)
	if detected == "" {
		detected = sourceLang
	}
	return translated, detected, nil
}
