package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/doeshing/orgai/internal/application/config"
	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	// LookPath and Getenv default to exec.LookPath and os.Getenv.
	LookPath func(string) (string, error)
	Getenv   func(string) string
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := config.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format %s, %d model(s)", cfg.ConfigFormatVersion, cfg.GetModelCount())))
	}

	listingCmd, _ := cfg.GetListingCommand()
	checks = append(checks, s.binaryCheck("Listing utility", listingCmd))
	checks = append(checks, s.binaryCheck("Shell", cfg.GetExecutionShell()))
	checks = append(checks, s.credentialCheck(cfg))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) binaryCheck(name, binary string) domain.HealthCheck {
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(binary)
	if err != nil {
		return fail(name, fmt.Sprintf("%s not found on PATH", binary))
	}
	return ok(name, path)
}

func (s *Service) credentialCheck(cfg domain.Config) domain.HealthCheck {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	model, err := cfg.SelectModel("")
	if err != nil {
		return fail("API key", err.Error())
	}
	if !model.RequiresCredential() {
		return ok("API key", fmt.Sprintf("model %s needs no credential", model.Name))
	}
	envVar := model.CredentialEnvVar()
	if getenv(envVar) == "" {
		return warn("API key", fmt.Sprintf("%s missing for model %s", envVar, model.Name))
	}
	return ok("API key", fmt.Sprintf("%s set for model %s", envVar, model.Name))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
