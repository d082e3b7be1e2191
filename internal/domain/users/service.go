package users

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"medecho/internal/store"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNotAuthenticated = errors.New("not authenticated")
)

const (
	entityName = "users"

	// sessionKey vive junto a las colecciones, pero guarda un único objeto
	// (el usuario logueado), no una lista.
	sessionKey = "medecho_current_user"
)

type Service struct {
	col *store.Collection[User]
	kv  store.KV

	mu      sync.RWMutex
	current *User // cache en memoria; sessionKey es el respaldo persistente
}

func NewService(kv store.KV) *Service {
	return &Service{
		col: store.NewCollection[User](kv, entityName),
		kv:  kv,
	}
}

type CreateInput struct {
	Email             string
	Name              string
	Phone             string
	PreferredLanguage string // vacío => english
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidInput
	}

	lang := LangEnglish
	if strings.TrimSpace(in.PreferredLanguage) != "" {
		var err error
		lang, err = ParseLanguage(in.PreferredLanguage)
		if err != nil {
			return User{}, ErrInvalidInput
		}
	}

	return s.col.Create(ctx, User{
		Email:             email,
		Name:              strings.TrimSpace(in.Name),
		Phone:             strings.TrimSpace(in.Phone),
		PreferredLanguage: lang,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, ErrInvalidInput
	}

	matches, err := s.col.Filter(ctx, map[string]any{"email": email})
	if err != nil {
		return User{}, err
	}
	if len(matches) == 0 {
		return User{}, ErrNotFound
	}
	return matches[0], nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.col.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (User, error) {
	if err := validatePatch(patch); err != nil {
		return User{}, err
	}

	u, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}

func validatePatch(patch map[string]any) error {
	if v, ok := patch["gender"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return ErrInvalidInput
		}
		if _, err := ParseGender(sv); err != nil {
			return ErrInvalidInput
		}
	}
	if v, ok := patch["preferred_language"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return ErrInvalidInput
		}
		if _, err := ParseLanguage(sv); err != nil {
			return ErrInvalidInput
		}
	}
	return nil
}

// --- Sesión -----------------------------------------------------------------
//
// El login es find-or-create por email: no hay password, el proveedor de
// identidad queda fuera de este servicio. La sesión se cachea en memoria y
// se respalda en el KV para sobrevivir reinicios del proceso.

func (s *Service) Login(ctx context.Context, email, name string) (User, error) {
	u, err := s.GetByEmail(ctx, email)
	switch {
	case err == nil:
		// ya existía
	case errors.Is(err, ErrNotFound):
		u, err = s.Create(ctx, CreateInput{Email: email, Name: name})
		if err != nil {
			return User{}, err
		}
	default:
		return User{}, err
	}

	if err := s.storeSession(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Current devuelve el usuario logueado: primero memoria, después el respaldo
// persistente. Sin sesión => ErrNotAuthenticated.
func (s *Service) Current(ctx context.Context) (User, error) {
	s.mu.RLock()
	cached := s.current
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	raw, ok, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, ErrNotAuthenticated
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return User{}, store.ErrCorrupted
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return u, nil
}

func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.kv.Delete(ctx, sessionKey)
}

// UpdateProfile aplica el patch sobre el usuario logueado y refresca la
// sesión cacheada con el resultado.
func (s *Service) UpdateProfile(ctx context.Context, patch map[string]any) (User, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return User{}, err
	}

	updated, err := s.Update(ctx, current.ID, patch)
	if err != nil {
		return User{}, err
	}

	if err := s.storeSession(ctx, updated); err != nil {
		return User{}, err
	}
	return updated, nil
}

func (s *Service) storeSession(ctx context.Context, u User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, sessionKey, raw); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return nil
}
