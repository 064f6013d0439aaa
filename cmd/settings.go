package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/exportgen/internal/adapter"
	"github.com/mouse-blink/exportgen/internal/config"
	"github.com/mouse-blink/exportgen/internal/controller"
	"github.com/mouse-blink/exportgen/internal/domain"
	"github.com/mouse-blink/exportgen/internal/logging"
	m "github.com/mouse-blink/exportgen/internal/model"
)

// flagValues holds the raw persistent flags.
type flagValues struct {
	root       string
	configFile string
	src        string
	out        string
	descriptor string
	preview    int
	plain      bool
	logLevel   string
	logFormat  string
	logSource  bool
}

// resolved is the effective configuration of the current invocation.
type resolved struct {
	root string
	cfg  config.Config
}

var flags flagValues
var settings resolved

func bindPersistentFlags(cmd *cobra.Command) {
	defaults := config.Default()

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.root, "root", "C", ".", "project root containing package.json")
	pf.StringVar(&flags.configFile, "config", "", "config file (default <root>/"+config.FileName+" if present)")
	pf.StringVar(&flags.src, "src", defaults.SourceRoot, "source root, relative to the project root")
	pf.StringVar(&flags.out, "out", defaults.OutputRoot, "compiled output root used in export targets")
	pf.StringVar(&flags.descriptor, "descriptor", defaults.Descriptor, "package descriptor to update")
	pf.IntVar(&flags.preview, "preview", defaults.Preview, "number of exports shown after a run")
	pf.BoolVar(&flags.plain, "plain", false, "plain text output even on a terminal")
	pf.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", defaults.LogFormat, "log format: text or json")
	pf.BoolVar(&flags.logSource, "log-source", defaults.LogSource, "include source locations in log records")
}

// resolveSettings layers flags that were set explicitly over the config
// loaded for the project root.
func resolveSettings(cmd *cobra.Command) (resolved, error) {
	cfg, err := config.Load(flags.root, flags.configFile)
	if err != nil {
		return resolved{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("src") {
		cfg.SourceRoot = flags.src
	}

	if fs.Changed("out") {
		cfg.OutputRoot = flags.out
	}

	if fs.Changed("descriptor") {
		cfg.Descriptor = flags.descriptor
	}

	if fs.Changed("preview") {
		cfg.Preview = flags.preview
	}

	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	if fs.Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}

	if fs.Changed("log-source") {
		cfg.LogSource = flags.logSource
	}

	if err := cfg.Validate(); err != nil {
		return resolved{}, err
	}

	return resolved{root: flags.root, cfg: cfg}, nil
}

func (r resolved) scanArgs() domain.ScanArgs {
	return domain.ScanArgs{
		Root:   m.Path(r.root),
		Layout: domain.DefaultLayout().WithRoots(r.cfg.SourceRoot, r.cfg.OutputRoot),
	}
}

func (r resolved) generateArgs() domain.GenerateArgs {
	return domain.GenerateArgs{
		ScanArgs:   r.scanArgs(),
		Descriptor: m.Path(r.cfg.Descriptor),
		Preview:    r.cfg.Preview,
	}
}

// prepare resolves settings, installs the logger and, unless one was
// injected, builds the workflow.
func prepare(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	settings = s

	logger, err := newLogger(cmd, s.cfg)
	if err != nil {
		return err
	}

	logging.ForComponent("cli").Debug("settings resolved",
		"root", s.root,
		"src", s.cfg.SourceRoot,
		"out", s.cfg.OutputRoot,
		"descriptor", s.cfg.Descriptor,
		"preview", s.cfg.Preview,
	)

	if workflow == nil {
		ui := controller.NewUI(cmd, !flags.plain && controller.IsTTY(os.Stdout))
		workflow = domain.NewWorkflow(
			adapter.NewLocalSourceFSAdapter(),
			adapter.NewDescriptorStore(),
			ui,
			logger,
		)
	}

	return nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	logCfg.AddSource = cfg.LogSource

	logger, err := logging.Init(logCfg)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	return logger, nil
}
