package domain_test

import (
	"testing"
	"time"

	"github.com/doeshing/orgai/internal/domain"
)

// TestConfig_GetDefaultModel tests retrieving the default model
func TestConfig_GetDefaultModel(t *testing.T) {
	tests := []struct {
		name        string
		config      domain.Config
		wantError   bool
		wantModelID string
	}{
		{
			name: "returns default model successfully",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "groq"},
				Models: []domain.ModelDefinition{
					{Name: "groq", ModelID: "llama3-70b-8192"},
					{Name: "local", ModelID: "llama3"},
				},
			},
			wantModelID: "llama3-70b-8192",
		},
		{
			name: "returns error when default model not found",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "nonexistent"},
				Models:      []domain.ModelDefinition{{Name: "groq"}},
			},
			wantError: true,
		},
		{
			name: "returns error when no default model configured",
			config: domain.Config{
				Models: []domain.ModelDefinition{{Name: "groq"}},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := tt.config.GetDefaultModel()

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if model.ModelID != tt.wantModelID {
				t.Errorf("got model ID %s, want %s", model.ModelID, tt.wantModelID)
			}
		})
	}
}

// TestConfig_SelectModel tests override, default and first-model resolution
func TestConfig_SelectModel(t *testing.T) {
	cfg := domain.Config{
		Preferences: domain.Preferences{DefaultModel: "local"},
		Models: []domain.ModelDefinition{
			{Name: "groq"},
			{Name: "local"},
		},
	}

	tests := []struct {
		name      string
		config    domain.Config
		override  string
		wantName  string
		wantError bool
	}{
		{name: "override wins", config: cfg, override: "groq", wantName: "groq"},
		{name: "default used without override", config: cfg, wantName: "local"},
		{name: "unknown override fails", config: cfg, override: "missing", wantError: true},
		{
			name:     "first model when no default",
			config:   domain.Config{Models: []domain.ModelDefinition{{Name: "groq"}, {Name: "local"}}},
			wantName: "groq",
		},
		{name: "no models fails", config: domain.Config{}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := tt.config.SelectModel(tt.override)
			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if model.Name != tt.wantName {
				t.Errorf("got model %s, want %s", model.Name, tt.wantName)
			}
		})
	}
}

// TestConfig_ValidateConsistency tests configuration consistency validation
func TestConfig_ValidateConsistency(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		wantError bool
	}{
		{
			name: "valid configuration",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "groq"},
				Models:      []domain.ModelDefinition{{Name: "groq"}, {Name: "local"}},
			},
		},
		{
			name: "invalid: default model doesn't exist",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "nonexistent"},
				Models:      []domain.ModelDefinition{{Name: "groq"}},
			},
			wantError: true,
		},
		{
			name: "invalid: default model set but no models configured",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "groq"},
			},
			wantError: true,
		},
		{
			name: "invalid: duplicate model names",
			config: domain.Config{
				Models: []domain.ModelDefinition{{Name: "groq"}, {Name: "groq"}},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateConsistency()

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

// TestConfig_Defaults tests getters falling back to built-in defaults
func TestConfig_Defaults(t *testing.T) {
	var cfg domain.Config

	command, args := cfg.GetListingCommand()
	if command != "tree" || len(args) != 2 || args[0] != "-L" || args[1] != "1" {
		t.Errorf("unexpected listing command %s %v", command, args)
	}
	if cfg.GetEmptyListingMarker() != "0 directories, 0 files" {
		t.Errorf("unexpected empty marker %q", cfg.GetEmptyListingMarker())
	}
	if cfg.GetExecutionShell() != "/bin/bash" {
		t.Errorf("unexpected shell %s", cfg.GetExecutionShell())
	}
	if got := cfg.GetExecutionShellArgs(); len(got) != 2 || got[0] != "-e" || got[1] != "-c" {
		t.Errorf("unexpected shell args %v", got)
	}
	if cfg.GetTimeout() != 0 {
		t.Errorf("expected no timeout, got %s", cfg.GetTimeout())
	}

	cfg.Preferences.TimeoutSeconds = 5
	if cfg.GetTimeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.GetTimeout())
	}
}

// TestConfig_GetListingCommandCopiesArgs guards the configured slice against caller mutation
func TestConfig_GetListingCommandCopiesArgs(t *testing.T) {
	cfg := domain.Config{Listing: domain.ListingSettings{Command: "ls", Args: []string{"-1"}}}

	_, args := cfg.GetListingCommand()
	args[0] = "-la"

	if cfg.Listing.Args[0] != "-1" {
		t.Errorf("config args were mutated: %v", cfg.Listing.Args)
	}
}
