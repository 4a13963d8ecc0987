// Package domain defines core business entities and value objects for orgai.
//
// This file contains completion model and provider definitions used throughout
// the application. The domain layer is independent of infrastructure concerns.
package domain

import "strings"

// ProviderKind names the wire protocol spoken by a completion service.
type ProviderKind string

const (
	ProviderKindUnknown   ProviderKind = ""
	ProviderKindOpenAI    ProviderKind = "openai"
	ProviderKindAnthropic ProviderKind = "anthropic"
	ProviderKindOllama    ProviderKind = "ollama"
)

// ModelDefinition describes a completion service declared in the config file.
type ModelDefinition struct {
	Name        string          `yaml:"name" json:"name"`
	Provider    ProviderKind    `yaml:"provider,omitempty" json:"provider,omitempty"`
	Endpoint    string          `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	AuthEnvVar  string          `yaml:"auth_env_var,omitempty" json:"auth_env_var,omitempty"`
	ModelID     string          `yaml:"model_id" json:"model_id"`
	MaxTokens   int             `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
	Temperature *float64        `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	Prompt      []PromptMessage `yaml:"prompt,omitempty" json:"prompt,omitempty"`
}

// PromptMessage follows the role/content pair required by most chat APIs.
type PromptMessage struct {
	Role    string `yaml:"role" json:"role"`
	Content string `yaml:"content" json:"content"`
}

// Chat roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Kind returns the configured provider, inferring it from the endpoint when unset.
func (m ModelDefinition) Kind() ProviderKind {
	if m.Provider != ProviderKindUnknown {
		return ProviderKind(strings.ToLower(string(m.Provider)))
	}
	endpoint := strings.ToLower(m.Endpoint)
	switch {
	case strings.Contains(endpoint, "anthropic.com"):
		return ProviderKindAnthropic
	case strings.Contains(endpoint, "11434"), strings.Contains(strings.ToLower(m.Name), "ollama"):
		return ProviderKindOllama
	default:
		return ProviderKindOpenAI
	}
}

// GetTemperature returns the sampling temperature with default fallback.
func (m ModelDefinition) GetTemperature() float64 {
	if m.Temperature == nil {
		return DefaultTemperature
	}
	return *m.Temperature
}

// GetMaxTokens returns the token limit with default fallback.
func (m ModelDefinition) GetMaxTokens() int {
	if m.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return m.MaxTokens
}

// CredentialEnvVar names the variable holding the API key. Hosted providers
// fall back to their conventional variable; local Ollama needs none.
func (m ModelDefinition) CredentialEnvVar() string {
	if m.AuthEnvVar != "" {
		return m.AuthEnvVar
	}
	switch m.Kind() {
	case ProviderKindOpenAI:
		return DefaultAuthEnvVar
	case ProviderKindAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}

// RequiresCredential reports whether an API key must be present before calling the service.
func (m ModelDefinition) RequiresCredential() bool {
	return m.CredentialEnvVar() != ""
}
