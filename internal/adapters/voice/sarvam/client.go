package sarvam

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medecho/internal/platform/httpclient"
	"medecho/internal/ports/voice"
)

var (
	ErrSarvamNotConfigured = errors.New("sarvam client not configured")
	ErrSarvamUnauthorized  = errors.New("sarvam unauthorized")
	ErrSarvamUpstream      = errors.New("sarvam upstream error")
)

const defaultLanguage = "en-IN"

// Config del cliente Sarvam. BaseURL y APIKey vienen de env vars en quien
// lo instancie; sin ambos el adapter queda deshabilitado.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: header de la API key. Vacío => "api-subscription-key".
	APIKeyHeader string

	Timeout time.Duration
}

// Client implementa los puertos de voz contra la API de Sarvam.
type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "api-subscription-key"
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

func (c *Client) headers() map[string]string {
	return map[string]string{c.apiKeyHeader: c.apiKey}
}

// Transcribe manda el audio en base64 y devuelve el transcript.
func (c *Client) Transcribe(ctx context.Context, audio []byte, languageCode string) (voice.Transcript, error) {
	if !c.IsConfigured() {
		return voice.Transcript{}, ErrSarvamNotConfigured
	}
	if len(audio) == 0 {
		return voice.Transcript{}, errors.New("sarvam: empty audio")
	}
	if strings.TrimSpace(languageCode) == "" {
		languageCode = defaultLanguage
	}

	in := map[string]string{
		"audio":         base64.StdEncoding.EncodeToString(audio),
		"language_code": languageCode,
	}
	var out struct {
		Transcript   string `json:"transcript"`
		LanguageCode string `json:"language_code"`
	}

	if err := c.http.DoJSON(ctx, http.MethodPost, "/speech-to-text", c.headers(), in, &out); err != nil {
		return voice.Transcript{}, wrap(err)
	}
	if strings.TrimSpace(out.LanguageCode) == "" {
		out.LanguageCode = languageCode
	}

	return voice.Transcript{
		Text:         strings.TrimSpace(out.Transcript),
		LanguageCode: out.LanguageCode,
	}, nil
}

// Synthesize devuelve el audio (base64-decodificado) de un texto.
func (c *Client) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	if !c.IsConfigured() {
		return nil, ErrSarvamNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("sarvam: empty text")
	}
	if strings.TrimSpace(languageCode) == "" {
		languageCode = defaultLanguage
	}

	in := map[string]any{
		"inputs":               []string{text},
		"target_language_code": languageCode,
	}
	var out struct {
		Audios []string `json:"audios"`
	}

	if err := c.http.DoJSON(ctx, http.MethodPost, "/text-to-speech", c.headers(), in, &out); err != nil {
		return nil, wrap(err)
	}
	if len(out.Audios) == 0 {
		return nil, fmt.Errorf("%w: empty audio response", ErrSarvamUpstream)
	}

	raw, err := base64.StdEncoding.DecodeString(out.Audios[0])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 audio: %v", ErrSarvamUpstream, err)
	}
	return raw, nil
}

// Advise pide una recomendación de salud en el idioma del paciente.
func (c *Client) Advise(ctx context.Context, symptoms, languageCode string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrSarvamNotConfigured
	}
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return "", errors.New("sarvam: empty symptoms")
	}
	if strings.TrimSpace(languageCode) == "" {
		languageCode = defaultLanguage
	}

	in := map[string]any{
		"messages": []map[string]string{
			{"role": "system", "content": "You are a cautious health companion. Suggest home care and when to see a doctor. Reply in " + languageCode + "."},
			{"role": "user", "content": symptoms},
		},
	}
	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := c.http.DoJSON(ctx, http.MethodPost, "/v1/chat/completions", c.headers(), in, &out); err != nil {
		return "", wrap(err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrSarvamUpstream)
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func wrap(err error) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		if he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden {
			return ErrSarvamUnauthorized
		}
		return fmt.Errorf("%w: status=%d", ErrSarvamUpstream, he.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrSarvamUpstream, err)
}
