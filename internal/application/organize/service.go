package organize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/orgai/internal/application/config"
	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

// Service runs the listing -> completion -> confirmation -> execution pipeline.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Collector      ports.ListingCollector
	Clients        ports.CompletionClientFactory
	Prompter       ports.ConfirmationPrompter
	Executor       ports.ScriptExecutor
	Progress       ports.ProgressReporter
	Logger         ports.Logger
}

// Run processes the current working directory once.
func (s *Service) Run(ctx context.Context, req domain.RunRequest) (domain.RunResponse, error) {
	if s.ConfigProvider == nil || s.Collector == nil || s.Clients == nil ||
		s.Prompter == nil || s.Executor == nil || s.Logger == nil {
		return domain.RunResponse{}, errors.New("organize.Service dependencies not satisfied")
	}
	progress := s.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.RunResponse{}, fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return domain.RunResponse{}, fmt.Errorf("invalid config: %w", err)
	}
	if timeout := cfg.GetTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	command, args := cfg.GetListingCommand()
	progress.Step(fmt.Sprintf("Running command: %s", strings.Join(append([]string{command}, args...), " ")))

	listing, err := s.Collector.Collect(ctx, cfg)
	if err != nil {
		return domain.RunResponse{}, fmt.Errorf("collect listing: %w", err)
	}
	resp := domain.RunResponse{Listing: listing}
	progress.Section(fmt.Sprintf("Directory Listing (%s)", listing.Command), listing.Text)

	if listing.IsEmpty(cfg.GetEmptyListingMarker()) {
		s.Logger.Info("listing empty, nothing to organize", map[string]interface{}{"dir": listing.WorkingDir})
		resp.Outcome = domain.OutcomeNothingToOrganize
		return resp, nil
	}

	script, model, err := s.generate(ctx, cfg, req, listing, progress)
	resp.Model = model
	if err != nil {
		return resp, err
	}
	resp.Script = script

	approved, err := s.Prompter.Confirm(script)
	if err != nil {
		return resp, fmt.Errorf("confirm script: %w", err)
	}
	if !approved {
		s.Logger.Info("execution declined", nil)
		resp.Outcome = domain.OutcomeDeclined
		return resp, nil
	}

	if !script.HasCommands() {
		s.Logger.Info("script holds no commands", nil)
		resp.Outcome = domain.OutcomeNothingToExecute
		return resp, nil
	}

	progress.Step(fmt.Sprintf("Running in directory: %s", listing.WorkingDir))
	result, err := s.Executor.Execute(ctx, cfg, script)
	resp.ExecutionResult = &result
	if err != nil {
		var cmdErr *domain.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Hint == "" {
			cmdErr.Hint = script.FirstCommandLine()
		}
		return resp, fmt.Errorf("execute script: %w", err)
	}

	s.Logger.Info("script executed", map[string]interface{}{
		"exit_code":   result.ExitCode,
		"duration_ms": result.DurationMS,
	})
	resp.Outcome = domain.OutcomeExecuted
	return resp, nil
}

func (s *Service) generate(
	ctx context.Context,
	cfg domain.Config,
	req domain.RunRequest,
	listing domain.Listing,
	progress ports.ProgressReporter,
) (domain.Script, string, error) {
	model, err := cfg.SelectModel(req.ModelOverride)
	if err != nil {
		return "", "", err
	}

	client, err := s.Clients.ForModel(model)
	if err != nil {
		return "", model.Name, fmt.Errorf("completion client init: %w", err)
	}

	request, err := BuildCompletionRequest(model, listing)
	if err != nil {
		return "", model.Name, fmt.Errorf("render prompt: %w", err)
	}

	if req.Debug {
		for i, msg := range request.Messages {
			s.Logger.Debug("prompt message", map[string]interface{}{"index": i, "role": msg.Role, "content": msg.Content})
		}
	}

	progress.Step(fmt.Sprintf("Requesting Bash script generation from %s (%s)", client.Name(), model.ModelID))
	s.Logger.Info("calling completion service", map[string]interface{}{
		"provider": client.Name(),
		"model":    model.ModelID,
	})

	stop := progress.Wait("Waiting for " + client.Name())
	completion, err := client.Complete(ctx, request)
	stop()
	if err != nil {
		return "", model.Name, fmt.Errorf("generate script: %w", err)
	}

	if req.Debug {
		s.Logger.Debug("raw completion", map[string]interface{}{"text": completion.Text})
	}

	if strings.TrimSpace(completion.Text) == "" {
		s.Logger.Warn("completion service returned an empty response", map[string]interface{}{"model": model.ModelID})
		progress.Step("Warning: completion service returned an empty response")
	} else {
		progress.Step("Response received")
	}

	return domain.NormalizeScript(completion.Text), model.Name, nil
}

type nopProgress struct{}

func (nopProgress) Step(string)            {}
func (nopProgress) Section(string, string) {}
func (nopProgress) Wait(string) func()     { return func() {} }
