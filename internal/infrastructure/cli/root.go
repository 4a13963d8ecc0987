package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/orgai/internal/app"
	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// renderedError marks an error whose diagnostics were already printed.
type renderedError struct {
	err error
}

func (e *renderedError) Error() string { return e.err.Error() }
func (e *renderedError) Unwrap() error { return e.err }

// IsRendered reports whether err was already printed for the operator.
func IsRendered(err error) bool {
	var rendered *renderedError
	return errors.As(err, &rendered)
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, *app.Container, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, nil, err
	}

	var (
		model string
		debug bool
	)

	root := &cobra.Command{
		Use:   "orgai",
		Short: "orgai - organize the current directory with an AI-generated script",
		Long: "orgai lists the current directory, asks a completion service for a Bash script that\n" +
			"sorts the entries into category folders, and runs it only after you answer y.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				container.Logger.SetVerbose(true)
			}
			service := container.OrganizeService
			service.Prompter = NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			service.Progress = NewConsoleProgress(cmd.OutOrStdout(), os.Stderr)

			resp, err := service.Run(cmd.Context(), domain.RunRequest{
				ModelOverride: model,
				Debug:         debug,
			})
			RenderResponse(cmd.OutOrStdout(), resp)
			if err != nil {
				RenderError(cmd.ErrOrStderr(), err)
				return &renderedError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&model, "model", "m", "", "Override model name (default from config)")
	root.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging")

	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewModelsCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, container, nil
}
