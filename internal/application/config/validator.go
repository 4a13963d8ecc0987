package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/doeshing/orgai/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if len(cfg.Models) == 0 {
		return errors.New("at least one model must be configured")
	}
	if err := cfg.ValidateConsistency(); err != nil {
		return err
	}
	for _, model := range cfg.Models {
		if err := validateModel(model); err != nil {
			return err
		}
	}
	if err := validateListing(cfg.Listing); err != nil {
		return err
	}
	if err := validateExecution(cfg.Execution); err != nil {
		return err
	}
	return validateLogging(cfg.Logging)
}

func validateModel(model domain.ModelDefinition) error {
	if model.Name == "" {
		return errors.New("models[].name must be set")
	}
	if model.ModelID == "" {
		return fmt.Errorf("model %s: model_id must be set", model.Name)
	}
	switch model.Kind() {
	case domain.ProviderKindOpenAI, domain.ProviderKindAnthropic, domain.ProviderKindOllama:
	default:
		return fmt.Errorf("model %s: provider must be openai|anthropic|ollama, got %s", model.Name, model.Provider)
	}
	if t := model.GetTemperature(); t < 0 || t > 2 {
		return fmt.Errorf("model %s: temperature must be within [0, 2], got %g", model.Name, t)
	}
	if model.MaxTokens < 0 {
		return fmt.Errorf("model %s: max_tokens must be >= 0", model.Name)
	}
	return nil
}

func validateListing(listing domain.ListingSettings) error {
	if listing.Command == "" && len(listing.Args) > 0 {
		return errors.New("listing.args set without listing.command")
	}
	return nil
}

func validateExecution(exec domain.ExecutionSettings) error {
	if len(exec.ShellArgs) == 0 {
		return nil
	}
	if !slices.Contains(exec.ShellArgs, "-e") && !slices.Contains(exec.ShellArgs, "-ec") {
		return errors.New("execution.shell_args must include -e so the script stops at the first failing command")
	}
	if last := exec.ShellArgs[len(exec.ShellArgs)-1]; last != "-c" && last != "-ec" {
		return fmt.Errorf("execution.shell_args must end with -c, got %s", last)
	}
	return nil
}

func validateLogging(logging domain.LoggingSettings) error {
	if logging.MaxSizeMB < 0 || logging.MaxBackups < 0 || logging.MaxAgeDays < 0 {
		return errors.New("logging limits must be >= 0")
	}
	return nil
}
