package app

import (
	"context"

	"github.com/doeshing/orgai/internal/application/doctor"
	"github.com/doeshing/orgai/internal/application/organize"
	"github.com/doeshing/orgai/internal/infrastructure/ai"
	"github.com/doeshing/orgai/internal/infrastructure/config"
	"github.com/doeshing/orgai/internal/infrastructure/executor"
	"github.com/doeshing/orgai/internal/infrastructure/listing"
	"github.com/doeshing/orgai/internal/pkg/logger"
	"github.com/doeshing/orgai/internal/ports"
)

// Container wires up application services with infrastructure adapters.
// OrganizeService still needs a Prompter and Progress from the CLI layer.
type Container struct {
	OrganizeService *organize.Service
	DoctorService   *doctor.Service
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	Logger          *logger.StdLogger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")

	envFile, envErr := config.LoadDotEnv(cfgLoader.Dir())

	// A broken config must not stop doctor or config commands from running;
	// the organize pipeline reloads and reports it.
	log := logger.NewStd(verbose)
	if cfg, err := cfgLoader.Load(ctx); err == nil {
		log = logger.NewWithFile(verbose, cfg.Logging)
	}
	if envErr != nil {
		log.Warn("failed to load .env", map[string]interface{}{"dir": cfgLoader.Dir(), "error": envErr.Error()})
	} else if envFile != "" {
		log.Debug("loaded .env", map[string]interface{}{"path": envFile})
	}

	organizeService := &organize.Service{
		ConfigProvider: cfgLoader,
		Collector:      listing.NewTreeCollector(""),
		Clients:        ai.NewFactory(),
		Executor:       executor.NewLocalExecutor(""),
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
	}

	return &Container{
		OrganizeService: organizeService,
		DoctorService:   doctorService,
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		Logger:          log,
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c == nil || c.Logger == nil {
		return nil
	}
	return c.Logger.Close()
}
