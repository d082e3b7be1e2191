package router

import (
	"context"
	"net/http"
	"os"

	"medecho/internal/adapters/storage/localfile"
	"medecho/internal/adapters/storage/memory"
	"medecho/internal/adapters/storage/postgres"
	"medecho/internal/adapters/voice/sarvam"
	"medecho/internal/domain/clinics"
	"medecho/internal/domain/consultations"
	"medecho/internal/domain/doctors"
	"medecho/internal/domain/emergency"
	"medecho/internal/domain/healthrecords"
	"medecho/internal/domain/medicines"
	"medecho/internal/domain/pharmacies"
	"medecho/internal/domain/reminders"
	"medecho/internal/domain/users"
	"medecho/internal/domain/voicecare"
	"medecho/internal/middleware"
	"medecho/internal/platform/logger"
	"medecho/internal/ports/auth"
	"medecho/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "medecho/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev: X-Debug-User-ID)

	// Opcional: KV explícito (tests). Si es nil se elige por env:
	// DB_DSN => postgres, DATA_DIR => archivos locales, sino memoria.
	KV store.KV

	// Opcional: cliente de voz. Solo si está configurado se montan rutas /voice.
	Voice *sarvam.Client

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	kv := opts.KV
	if kv == nil {
		kv = KVFromEnv(log)
	}

	// Services por módulo
	doctorsSvc := doctors.NewService(kv)
	clinicsSvc := clinics.NewService(kv)
	pharmaciesSvc := pharmacies.NewService(kv)
	medicinesSvc := medicines.NewService(kv)
	consultationsSvc := consultations.NewService(kv)
	recordsSvc := healthrecords.NewService(kv)
	emergencySvc := emergency.NewService(kv)
	remindersSvc := reminders.NewService(kv)
	usersSvc := users.NewService(kv)

	// Rutas por módulo
	doctors.RegisterRoutes(r, doctorsSvc)
	clinics.RegisterRoutes(r, clinicsSvc)
	pharmacies.RegisterRoutes(r, pharmaciesSvc)
	medicines.RegisterRoutes(r, medicinesSvc)
	consultations.RegisterRoutes(r, consultationsSvc)
	healthrecords.RegisterRoutes(r, recordsSvc)
	emergency.RegisterRoutes(r, emergencySvc)
	reminders.RegisterRoutes(r, remindersSvc)
	users.RegisterRoutes(r, usersSvc)

	if opts.Voice != nil && opts.Voice.IsConfigured() {
		voicecare.RegisterRoutes(r, opts.Voice, opts.Voice, opts.Voice, recordsSvc)
		log.Info("voice routes enabled", nil)
	}

	return r
}

// KVFromEnv elige el backend de almacenamiento. Si postgres o el directorio
// local fallan, cae a memoria y lo deja logueado en vez de tumbar el server.
func KVFromEnv(log logger.Logger) store.KV {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := postgres.Open(dsn)
		if err == nil {
			kv := postgres.NewKV(db)
			if err := kv.EnsureSchema(context.Background()); err == nil {
				log.Info("storage backend", map[string]any{"kind": "postgres"})
				return kv
			}
			log.Warn("postgres schema init failed, falling back", map[string]any{"error": err.Error()})
		} else {
			log.Warn("postgres open failed, falling back", map[string]any{"error": err.Error()})
		}
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		kv, err := localfile.NewKV(dir)
		if err == nil {
			log.Info("storage backend", map[string]any{"kind": "localfile", "dir": dir})
			return kv
		}
		log.Warn("localfile init failed, falling back", map[string]any{"error": err.Error()})
	}

	log.Info("storage backend", map[string]any{"kind": "memory"})
	return memory.NewKV()
}
