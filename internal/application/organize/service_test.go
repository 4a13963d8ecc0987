package organize

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/infrastructure/executor"
	"github.com/doeshing/orgai/internal/pkg/logger"
	"github.com/doeshing/orgai/internal/ports"
)

func testConfig() domain.Config {
	return domain.Config{
		Preferences: domain.Preferences{DefaultModel: "groq"},
		Models: []domain.ModelDefinition{
			{Name: "groq", Provider: domain.ProviderKindOpenAI, ModelID: "llama3-70b-8192"},
		},
	}
}

const nonEmptyListing = ".\n├── main.py\n├── photo.jpg\n└── report.pdf\n\n0 directories, 3 files\n"

func newTestService(listing string, reply string, answer bool, answerErr error, runner ports.ScriptExecutor) (*Service, *stubClientFactory, *stubPrompter) {
	factory := &stubClientFactory{client: &stubClient{reply: reply}}
	prompter := &stubPrompter{answer: answer, err: answerErr}
	return &Service{
		ConfigProvider: stubConfigProvider{cfg: testConfig()},
		Collector:      stubCollector{listing: domain.Listing{Text: listing, WorkingDir: "/tmp/work", Command: "tree -L 1"}},
		Clients:        factory,
		Prompter:       prompter,
		Executor:       runner,
		Logger:         logger.NewStd(false),
	}, factory, prompter
}

func TestRunEmptyListingSkipsCompletion(t *testing.T) {
	for _, listing := range []string{"", "   \n", ".\n\n0 directories, 0 files\n"} {
		runner := &stubExecutor{}
		svc, factory, prompter := newTestService(listing, "ls", true, nil, runner)

		resp, err := svc.Run(context.Background(), domain.RunRequest{})
		if err != nil {
			t.Fatalf("Run(%q) error = %v", listing, err)
		}
		if resp.Outcome != domain.OutcomeNothingToOrganize {
			t.Fatalf("Run(%q) outcome = %s", listing, resp.Outcome)
		}
		if factory.calls != 0 || factory.client.calls != 0 {
			t.Fatalf("completion service must not be called for %q", listing)
		}
		if prompter.calls != 0 || runner.called {
			t.Fatalf("nothing should be confirmed or executed for %q", listing)
		}
	}
}

func TestRunExecutesWhenApproved(t *testing.T) {
	runner := &stubExecutor{result: domain.ExecutionResult{Ran: true, Stdout: "ok"}}
	svc, factory, prompter := newTestService(nonEmptyListing, "```bash\nmkdir -p images\nmv photo.jpg images/\n```", true, nil, runner)

	resp, err := svc.Run(context.Background(), domain.RunRequest{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Outcome != domain.OutcomeExecuted {
		t.Fatalf("outcome = %s, want executed", resp.Outcome)
	}
	want := domain.Script("#!/bin/bash\nmkdir -p images\nmv photo.jpg images/")
	if prompter.shown != want || runner.script != want {
		t.Fatalf("script shown %q, executed %q, want %q", prompter.shown, runner.script, want)
	}
	if factory.client.calls != 1 {
		t.Fatalf("completion calls = %d, want 1", factory.client.calls)
	}
	if got := factory.client.request.Messages[len(factory.client.request.Messages)-1].Content; !strings.Contains(got, "Directory listing:\n"+nonEmptyListing[:len(nonEmptyListing)-1]) {
		t.Fatalf("user message does not carry the listing: %q", got)
	}
	if resp.ExecutionResult == nil || !resp.ExecutionResult.Ran {
		t.Fatalf("execution result = %+v", resp.ExecutionResult)
	}
}

func TestRunDeclinedDoesNotExecute(t *testing.T) {
	runner := &stubExecutor{}
	svc, _, _ := newTestService(nonEmptyListing, "mkdir -p images", false, nil, runner)

	resp, err := svc.Run(context.Background(), domain.RunRequest{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Outcome != domain.OutcomeDeclined {
		t.Fatalf("outcome = %s, want declined", resp.Outcome)
	}
	if runner.called {
		t.Fatal("executor must not run after a decline")
	}
	if code := domain.ExitCode(err); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}

func TestRunConfirmationUnavailable(t *testing.T) {
	runner := &stubExecutor{}
	svc, _, _ := newTestService(nonEmptyListing, "mkdir -p images", false, domain.ErrConfirmationUnavailable, runner)

	_, err := svc.Run(context.Background(), domain.RunRequest{})
	if !errors.Is(err, domain.ErrConfirmationUnavailable) {
		t.Fatalf("expected ErrConfirmationUnavailable, got %v", err)
	}
	if runner.called {
		t.Fatal("executor must not run without an answer")
	}
	if code := domain.ExitCode(err); code == 0 {
		t.Fatal("closed input must exit non-zero")
	}
}

func TestRunEmptyReplySkipsExecution(t *testing.T) {
	runner := &stubExecutor{}
	svc, _, prompter := newTestService(nonEmptyListing, "  \n", true, nil, runner)

	resp, err := svc.Run(context.Background(), domain.RunRequest{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if prompter.shown != domain.EmptyResponsePlaceholder {
		t.Fatalf("shown %q, want placeholder", prompter.shown)
	}
	if resp.Outcome != domain.OutcomeNothingToExecute || runner.called {
		t.Fatalf("outcome = %s, executor called = %v", resp.Outcome, runner.called)
	}
}

func TestRunPropagatesClientInitError(t *testing.T) {
	runner := &stubExecutor{}
	svc, factory, prompter := newTestService(nonEmptyListing, "ls", true, nil, runner)
	factory.err = &domain.MissingCredentialError{EnvVar: "GROQ_API_KEY", Model: "groq"}

	_, err := svc.Run(context.Background(), domain.RunRequest{})
	var credErr *domain.MissingCredentialError
	if !errors.As(err, &credErr) || credErr.EnvVar != "GROQ_API_KEY" {
		t.Fatalf("expected MissingCredentialError, got %v", err)
	}
	if factory.client.calls != 0 || prompter.calls != 0 {
		t.Fatal("no request or prompt expected without a credential")
	}
}

func TestRunModelOverride(t *testing.T) {
	runner := &stubExecutor{}
	svc, factory, _ := newTestService(nonEmptyListing, "ls", false, nil, runner)

	if _, err := svc.Run(context.Background(), domain.RunRequest{ModelOverride: "missing"}); err == nil {
		t.Fatal("expected error for unknown model override")
	}
	if factory.calls != 0 {
		t.Fatal("factory must not be called for an unknown model")
	}
}

func TestRunScriptFailureCarriesHint(t *testing.T) {
	runner := &stubExecutor{
		result: domain.ExecutionResult{Ran: true, ExitCode: 1},
		err:    &domain.CommandError{Stage: domain.StageScript, ExitCode: 1, Stderr: "mv: cannot stat"},
	}
	svc, _, _ := newTestService(nonEmptyListing, "#!/bin/bash\n# sort\nmv nothing.txt docs/\n", true, nil, runner)

	resp, err := svc.Run(context.Background(), domain.RunRequest{})
	var cmdErr *domain.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if cmdErr.Hint != "mv nothing.txt docs/" {
		t.Fatalf("hint = %q", cmdErr.Hint)
	}
	if domain.ExitCode(err) != 1 {
		t.Fatalf("exit code = %d, want 1", domain.ExitCode(err))
	}
	if resp.ExecutionResult == nil {
		t.Fatal("execution result should be kept on failure")
	}
}

func TestRunEndToEndMovesFiles(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
	dir := t.TempDir()
	for _, name := range []string{"main.py", "report.pdf", "photo.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	reply := "```bash\n#!/bin/bash\nmkdir -p documents images scripts\nmv \"report.pdf\" documents/\nmv \"photo.jpg\" images/\nmv \"main.py\" scripts/\n```"
	cfg := testConfig()
	cfg.Execution = domain.ExecutionSettings{Shell: "bash", ShellArgs: []string{"-e", "-c"}}

	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: cfg},
		Collector:      stubCollector{listing: domain.Listing{Text: "main.py\nreport.pdf\nphoto.jpg\n", WorkingDir: dir}},
		Clients:        &stubClientFactory{client: &stubClient{reply: reply}},
		Prompter:       &stubPrompter{answer: true},
		Executor:       executor.NewLocalExecutor(dir),
		Logger:         logger.NewStd(false),
	}

	resp, err := svc.Run(context.Background(), domain.RunRequest{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Outcome != domain.OutcomeExecuted || domain.ExitCode(err) != 0 {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	for _, moved := range []string{"documents/report.pdf", "images/photo.jpg", "scripts/main.py"} {
		if _, err := os.Stat(filepath.Join(dir, moved)); err != nil {
			t.Fatalf("expected %s: %v", moved, err)
		}
	}
	for _, gone := range []string{"report.pdf", "photo.jpg", "main.py"} {
		if _, err := os.Stat(filepath.Join(dir, gone)); !os.IsNotExist(err) {
			t.Fatalf("%s should have been moved", gone)
		}
	}
}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubCollector struct {
	listing domain.Listing
	err     error
}

func (s stubCollector) Collect(context.Context, domain.Config) (domain.Listing, error) {
	return s.listing, s.err
}

type stubClientFactory struct {
	client *stubClient
	err    error
	calls  int
}

func (s *stubClientFactory) ForModel(model domain.ModelDefinition) (ports.CompletionClient, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	s.client.model = model
	return s.client, nil
}

type stubClient struct {
	model   domain.ModelDefinition
	reply   string
	err     error
	calls   int
	request ports.CompletionRequest
}

func (s *stubClient) Name() string                  { return "stub" }
func (s *stubClient) Model() domain.ModelDefinition { return s.model }

func (s *stubClient) Complete(_ context.Context, req ports.CompletionRequest) (ports.CompletionResponse, error) {
	s.calls++
	s.request = req
	return ports.CompletionResponse{Text: s.reply}, s.err
}

type stubPrompter struct {
	answer bool
	err    error
	calls  int
	shown  domain.Script
}

func (s *stubPrompter) Confirm(script domain.Script) (bool, error) {
	s.calls++
	s.shown = script
	return s.answer, s.err
}

type stubExecutor struct {
	result domain.ExecutionResult
	err    error
	called bool
	script domain.Script
}

func (s *stubExecutor) Execute(_ context.Context, _ domain.Config, script domain.Script) (domain.ExecutionResult, error) {
	s.called = true
	s.script = script
	return s.result, s.err
}

func TestRunDebugLogsPromptAndReply(t *testing.T) {
	for _, debug := range []bool{false, true} {
		log := &recordingLogger{}
		svc, _, _ := newTestService(nonEmptyListing, "```bash\nmv a b\n```", false, nil, &stubExecutor{})
		svc.Logger = log

		if _, err := svc.Run(context.Background(), domain.RunRequest{Debug: debug}); err != nil {
			t.Fatalf("Run(debug=%v) error = %v", debug, err)
		}

		var prompts, replies int
		for _, entry := range log.debug {
			switch entry.msg {
			case "prompt message":
				prompts++
			case "raw completion":
				replies++
				if entry.fields["text"] != "```bash\nmv a b\n```" {
					t.Fatalf("raw completion = %v", entry.fields["text"])
				}
			}
		}
		if debug && (prompts != 2 || replies != 1) {
			t.Fatalf("debug run logged %d prompt messages and %d replies, want 2 and 1", prompts, replies)
		}
		if !debug && (prompts != 0 || replies != 0) {
			t.Fatalf("non-debug run logged %d prompt messages and %d replies", prompts, replies)
		}
	}
}

type logEntry struct {
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	debug []logEntry
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debug = append(l.debug, logEntry{msg: msg, fields: fields})
}
func (l *recordingLogger) Info(string, map[string]interface{})         {}
func (l *recordingLogger) Warn(string, map[string]interface{})         {}
func (l *recordingLogger) Error(string, error, map[string]interface{}) {}
