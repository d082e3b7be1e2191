// Package voicecare expone el flujo de consulta por voz: audio del paciente →
// transcript → recomendación del asistente → health record + respuesta hablada.
package voicecare

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"medecho/internal/domain/healthrecords"
	"medecho/internal/middleware"
	"medecho/internal/platform/web"
	"medecho/internal/ports/voice"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, stt voice.SpeechToText, assistant voice.Assistant, tts voice.TextToSpeech, records *healthrecords.Service) {
	r.Route("/voice", func(vr chi.Router) {
		vr.Post("/consult", consultHandler(stt, assistant, tts, records))
	})
}

type consultRequest struct {
	Audio        string `json:"audio"` // base64
	LanguageCode string `json:"language_code"`
	Severity     string `json:"severity"` // vacío => medium
}

type consultResponse struct {
	Transcript     string `json:"transcript"`
	Recommendation string `json:"recommendation"`
	ReplyAudio     string `json:"reply_audio,omitempty"` // base64; vacío si el TTS falló
	RecordID       string `json:"record_id"`
}

func consultHandler(stt voice.SpeechToText, assistant voice.Assistant, tts voice.TextToSpeech, records *healthrecords.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req consultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		audio, err := base64.StdEncoding.DecodeString(req.Audio)
		if err != nil || len(audio) == 0 {
			http.Error(w, "audio must be non-empty base64", http.StatusBadRequest)
			return
		}

		tr, err := stt.Transcribe(r.Context(), audio, req.LanguageCode)
		if err != nil {
			http.Error(w, "speech service unavailable", http.StatusBadGateway)
			return
		}

		advice, err := assistant.Advise(r.Context(), tr.Text, tr.LanguageCode)
		if err != nil {
			http.Error(w, "assistant unavailable", http.StatusBadGateway)
			return
		}

		severity := strings.TrimSpace(req.Severity)
		if severity == "" {
			severity = string(healthrecords.SeverityMedium)
		}

		rec, err := records.Create(r.Context(), healthrecords.CreateInput{
			UserID:           claims.UserID,
			Symptoms:         tr.Text,
			Severity:         severity,
			AIRecommendation: advice,
			ConsultationKind: string(healthrecords.KindAIOnly),
			VoiceTranscript:  tr.Text,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		out := consultResponse{
			Transcript:     tr.Text,
			Recommendation: advice,
			RecordID:       rec.ID,
		}

		// La respuesta hablada es best-effort: el episodio ya quedó registrado.
		if reply, err := tts.Synthesize(r.Context(), advice, tr.LanguageCode); err == nil {
			out.ReplyAudio = base64.StdEncoding.EncodeToString(reply)
		}

		web.WriteJSON(w, http.StatusOK, out)
	}
}
