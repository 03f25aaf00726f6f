package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"blackjackd/internal/apperrors"
)

func TestRegistryCreateValidation(t *testing.T) {
	r := NewRegistry(RegistryConfig{MinPlayers: 2, MaxPlayers: 3})

	tests := []struct {
		name     string
		emails   []string
		wantCode apperrors.Code
	}{
		{"too few", []string{"a@example.com"}, apperrors.CodeInvalidPlayerCount},
		{"too many", []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com"}, apperrors.CodeInvalidPlayerCount},
		{"duplicate", []string{"a@example.com", "a@example.com"}, apperrors.CodeDuplicatePlayer},
		{"within bounds", []string{"a@example.com", "b@example.com"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := r.Create(uuid.New(), tt.emails)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Create() failed: %v", err)
				}
				if s.State().CurrentTurnPlayer != tt.emails[0] {
					t.Fatalf("first turn = %q, want %q", s.State().CurrentTurnPlayer, tt.emails[0])
				}
				return
			}
			if got := apperrors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("Create() error code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestRegistryCreateCountDetails(t *testing.T) {
	r := NewRegistry(RegistryConfig{MinPlayers: 2, MaxPlayers: 4})

	_, err := r.Create(uuid.New(), []string{"only@example.com"})
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Create() error = %v, want *apperrors.Error", err)
	}
	want := map[string]string{"min": "2", "max": "4", "provided": "1"}
	for k, v := range want {
		if appErr.Details[k] != v {
			t.Fatalf("details[%q] = %q, want %q", k, appErr.Details[k], v)
		}
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	if cfg := r.Config(); cfg.MinPlayers != 1 || cfg.MaxPlayers != 10 {
		t.Fatalf("Config() = %+v, want min 1 max 10", cfg)
	}
}

func TestRegistryGetAndRemove(t *testing.T) {
	r := NewRegistry(RegistryConfig{})

	if _, err := r.Get(uuid.New()); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get(unknown) = %v, want ErrGameNotFound", err)
	}

	s, err := r.Create(uuid.New(), []string{"a@example.com"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != s {
		t.Fatal("Get() returned a different session")
	}

	r.Remove(s.ID)
	if _, err := r.Get(s.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get() after Remove = %v, want ErrGameNotFound", err)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryAddParticipant(t *testing.T) {
	r := NewRegistry(RegistryConfig{})
	s, err := r.Create(uuid.New(), []string{"a@example.com"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if err := r.AddParticipant(s.ID, "b@example.com"); err != nil {
		t.Fatalf("AddParticipant() failed: %v", err)
	}
	if !s.HasPlayer("b@example.com") {
		t.Fatal("joined participant missing from session")
	}
	if err := r.AddParticipant(uuid.New(), "c@example.com"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("AddParticipant(unknown game) = %v, want ErrGameNotFound", err)
	}
	if err := r.AddParticipant(s.ID, "b@example.com"); !errors.Is(err, ErrDuplicatePlayer) {
		t.Fatalf("AddParticipant(duplicate) = %v, want ErrDuplicatePlayer", err)
	}
}

// Two sessions must progress independently even under concurrent creation
// and play against the shared registry.
func TestRegistrySessionsProgressIndependently(t *testing.T) {
	r := NewRegistry(RegistryConfig{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := r.Create(uuid.New(), []string{"solo@example.com"})
			if err != nil {
				t.Errorf("Create() failed: %v", err)
				return
			}
			if _, err := s.Draw("solo@example.com"); err != nil {
				t.Errorf("Draw() failed: %v", err)
			}
			if _, err := s.Finish(); err != nil {
				t.Errorf("Finish() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if r.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", r.Len())
	}
}
