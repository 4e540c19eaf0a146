package app

import (
	"fmt"
	"io"
	"os"

	"github.com/larsks/appliances/internal/cli"
	"github.com/larsks/appliances/internal/console"
	"github.com/larsks/appliances/internal/devicefactory"
	"github.com/larsks/appliances/internal/eventlog"
	"github.com/larsks/appliances/internal/logging"
	"github.com/larsks/appliances/internal/manager"
	"go.uber.org/zap"
)

// Handler runs the appliance scenario: build the configured devices,
// turn them all on and report them.
type Handler struct {
	stdout io.Writer
}

// NewHandler creates a handler writing to stdout. If stdout is nil,
// os.Stdout is used.
func NewHandler(stdout io.Writer) *Handler {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Handler{stdout: stdout}
}

// Start implements cli.CommandHandler
func (h *Handler) Start(cfg cli.Configurable) error {
	c, ok := cfg.(*Config)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedConfig, cfg)
	}
	return h.Run(c)
}

// Run executes the scenario with an already loaded configuration
func (h *Handler) Run(c *Config) error {
	logType, err := eventlog.ParseType(c.LogType)
	if err != nil {
		return err
	}

	logger := eventlog.New(logType,
		eventlog.WithWriter(h.stdout),
		eventlog.WithFilePath(c.LogFile),
	)
	if logger == nil {
		return fmt.Errorf("%w: %s", eventlog.ErrUnknownType, logType)
	}
	defer func() {
		if err := eventlog.Close(logger); err != nil {
			logging.Warn("failed to close event log", zap.Error(err))
		}
	}()

	logging.Debug("configuration",
		zap.String("config-file", c.ConfigFile),
		zap.Stringer("log-type", logType),
		zap.Strings("devices", c.Devices),
	)

	m := manager.New(logger)
	for _, name := range c.Devices {
		d, err := devicefactory.Create(name)
		if err != nil {
			return err
		}
		m.AddDevice(d)
	}

	m.TurnOnAll()

	view := console.NewView(m, logger, h.stdout)
	view.ShowDevices()
	view.ShowTotalPower()

	logging.Info("done", zap.Int("devices", m.Count()), zap.Int("total-power", m.TotalPower()))
	return nil
}
