package ai

import (
	"strings"

	"github.com/doeshing/orgai/internal/domain"
)

func valueOrDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}

// splitSystemMessages separates system prompts for APIs that take them as a top-level field.
func splitSystemMessages(messages []domain.PromptMessage) (string, []domain.PromptMessage) {
	var systemLines []string
	var chat []domain.PromptMessage
	for _, msg := range messages {
		if strings.EqualFold(msg.Role, domain.RoleSystem) {
			systemLines = append(systemLines, msg.Content)
			continue
		}
		chat = append(chat, msg)
	}
	return strings.TrimSpace(strings.Join(systemLines, "\n")), chat
}

func valueOrDefaultInt(value int, def int) int {
	if value <= 0 {
		return def
	}
	return value
}
