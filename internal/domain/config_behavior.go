package domain

import (
	"fmt"
	"time"
)

// GetDefaultModel retrieves the default model definition from configuration
// Returns an error if the default model is not found
func (c *Config) GetDefaultModel() (ModelDefinition, error) {
	if c.Preferences.DefaultModel == "" {
		return ModelDefinition{}, fmt.Errorf("no default model configured")
	}

	for _, model := range c.Models {
		if model.Name == c.Preferences.DefaultModel {
			return model, nil
		}
	}

	return ModelDefinition{}, fmt.Errorf("default model %s not found in configuration", c.Preferences.DefaultModel)
}

// SelectModel resolves the model for a run: the override when given, else the
// default, else the first configured model.
func (c *Config) SelectModel(override string) (ModelDefinition, error) {
	if override != "" {
		if model, ok := c.FindModelByName(override); ok {
			return model, nil
		}
		return ModelDefinition{}, fmt.Errorf("model %s not configured", override)
	}
	if c.Preferences.DefaultModel == "" && len(c.Models) > 0 {
		return c.Models[0], nil
	}
	return c.GetDefaultModel()
}

// FindModelByName searches for a model by its name
// Returns the model definition and true if found, empty model and false otherwise
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// HasModel checks if a model with the given name exists in the configuration
func (c *Config) HasModel(name string) bool {
	_, exists := c.FindModelByName(name)
	return exists
}

// GetListingCommand returns the listing utility and its arguments.
func (c *Config) GetListingCommand() (string, []string) {
	if c.Listing.Command == "" {
		return DefaultListingCommand, append([]string(nil), DefaultListingArgs...)
	}
	return c.Listing.Command, append([]string(nil), c.Listing.Args...)
}

// GetEmptyListingMarker returns the text that marks an empty listing.
func (c *Config) GetEmptyListingMarker() string {
	if c.Listing.EmptyMarker == "" {
		return DefaultEmptyListingMarker
	}
	return c.Listing.EmptyMarker
}

// GetExecutionShell returns the interpreter for approved scripts
func (c *Config) GetExecutionShell() string {
	if c.Execution.Shell == "" {
		return DefaultShell
	}
	return c.Execution.Shell
}

// GetExecutionShellArgs returns the interpreter flags; the script text follows the last one.
func (c *Config) GetExecutionShellArgs() []string {
	if len(c.Execution.ShellArgs) == 0 {
		return append([]string(nil), DefaultShellArgs...)
	}
	return append([]string(nil), c.Execution.ShellArgs...)
}

// GetTimeout returns the run timeout; zero means unbounded.
func (c *Config) GetTimeout() time.Duration {
	if c.Preferences.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Preferences.TimeoutSeconds) * time.Second
}

// GetModelCount returns the total number of configured models
func (c *Config) GetModelCount() int {
	return len(c.Models)
}

// ValidateConsistency checks the internal consistency of the configuration
func (c *Config) ValidateConsistency() error {
	if c.Preferences.DefaultModel != "" && len(c.Models) == 0 {
		return fmt.Errorf("default model is set but no models are configured")
	}

	if c.Preferences.DefaultModel != "" && !c.HasModel(c.Preferences.DefaultModel) {
		return fmt.Errorf("default model %s does not exist in models list", c.Preferences.DefaultModel)
	}

	seen := make(map[string]bool, len(c.Models))
	for _, model := range c.Models {
		if seen[model.Name] {
			return fmt.Errorf("model %s is declared more than once", model.Name)
		}
		seen[model.Name] = true
	}

	return nil
}
