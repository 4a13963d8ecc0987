package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/orgai/internal/app"
)

// NewModelsCommand creates the models command
func NewModelsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List configured completion models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listModels(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}
}

// listModels displays every configured model, marking the default
func listModels(ctx context.Context, out io.Writer, container *app.Container) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	for _, model := range cfg.Models {
		defaultMarker := ""
		if model.Name == cfg.Preferences.DefaultModel {
			defaultMarker = " (default)"
		}
		credential := model.CredentialEnvVar()
		if credential == "" {
			credential = "-"
		}
		fmt.Fprintf(out, "- %s [%s] %s @ %s key=%s%s\n",
			model.Name,
			model.Kind(),
			model.ModelID,
			model.Endpoint,
			credential,
			defaultMarker)
	}

	return nil
}
