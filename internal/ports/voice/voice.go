package voice

import "context"

// Transcript es el resultado de pasar audio a texto.
type Transcript struct {
	Text         string
	LanguageCode string // BCP-47, p.ej. "hi-IN"
}

// SpeechToText transcribe audio del paciente.
type SpeechToText interface {
	Transcribe(ctx context.Context, audio []byte, languageCode string) (Transcript, error)
}

// TextToSpeech sintetiza una respuesta hablada.
type TextToSpeech interface {
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)
}

// Assistant genera una recomendación de salud a partir de síntomas en texto.
type Assistant interface {
	Advise(ctx context.Context, symptoms, languageCode string) (string, error)
}
