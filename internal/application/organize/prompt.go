package organize

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

const systemInstruction = "You are a helpful assistant that generates *only* raw Bash scripts as requested, ensuring filenames with spaces are quoted."

// organizeInstructions is sent verbatim ahead of the listing; it is never executed.
const organizeInstructions = `I will give you a list of files and directories in a folder, based on the output of 'tree -L 1'.
Based *only* on the file and directory names provided, generate a Bash script to organize them into appropriate categorized subdirectories.
The script should first create the necessary subdirectories (using 'mkdir -p' to avoid errors if they exist) and then move the files/directories into them (using 'mv').
Output *only* the raw Bash script content. Do not include any explanations, comments outside the script, or markdown code fences.
If no organization is needed or possible based on the names, output nothing or just a shebang line followed by '# No organization needed'.
Focus on common categories like 'images', 'documents', 'scripts', 'archives', 'videos', 'audio', 'data', 'config', 'apps' etc., based on file extensions or names. Be conservative if the type is unclear.
Do not attempt to move directories unless their names strongly suggest they belong in a category (e.g., 'my_images' could go to 'images').
Handle filenames with spaces correctly (quote them). Do not try to move the special Zone.Identifier files.`

type templateData struct {
	Instructions string
	Listing      string
	WorkingDir   string
}

// BuildCompletionRequest renders the model's prompt messages (or the built-in
// ones) around the listing and ensures a user message exists.
func BuildCompletionRequest(model domain.ModelDefinition, listing domain.Listing) (ports.CompletionRequest, error) {
	data := templateData{
		Instructions: organizeInstructions,
		Listing:      listing.Text,
		WorkingDir:   listing.WorkingDir,
	}

	messages := model.Prompt
	if len(messages) == 0 {
		messages = defaultTemplateMessages()
	}

	rendered := make([]domain.PromptMessage, 0, len(messages)+1)
	for _, msg := range messages {
		content, err := executeTemplate(msg.Content, data)
		if err != nil {
			return ports.CompletionRequest{}, err
		}
		rendered = append(rendered, domain.PromptMessage{
			Role:    strings.ToLower(msg.Role),
			Content: strings.TrimSpace(content),
		})
	}

	if !hasUserMessage(rendered) {
		fallback, err := executeTemplate(defaultUserTemplate, data)
		if err != nil {
			return ports.CompletionRequest{}, err
		}
		rendered = append(rendered, domain.PromptMessage{
			Role:    domain.RoleUser,
			Content: strings.TrimSpace(fallback),
		})
	}

	return ports.CompletionRequest{
		Messages:    rendered,
		Temperature: model.GetTemperature(),
		MaxTokens:   model.GetMaxTokens(),
	}, nil
}

const defaultUserTemplate = "{{.Instructions}}\nDirectory listing:\n{{.Listing}}"

func defaultTemplateMessages() []domain.PromptMessage {
	return []domain.PromptMessage{
		{Role: domain.RoleSystem, Content: systemInstruction},
		{Role: domain.RoleUser, Content: defaultUserTemplate},
	}
}

func executeTemplate(raw string, data templateData) (string, error) {
	tmpl, err := template.New("prompt").Option("missingkey=error").Parse(raw)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func hasUserMessage(messages []domain.PromptMessage) bool {
	for _, msg := range messages {
		if msg.Role == domain.RoleUser {
			return true
		}
	}
	return false
}
