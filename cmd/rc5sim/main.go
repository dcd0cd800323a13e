// rc5sim replays a scripted remote session against the decoder and the
// mouse device on a virtual clock and logs every report the host receives.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sparques/irmouse/scenario"
	"github.com/sparques/irmouse/sim"
)

func main() {
	var (
		configPath string
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "", "tuning config file (yaml, toml or json)")
	flag.BoolVar(&verbose, "v", false, "log decoder details")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: rc5sim [-config file] [-v] scenario.yaml...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}
	if cfg.ConfigPath != "" {
		logger.Debug("config loaded", "path", cfg.ConfigPath)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := run(logger, cfg, path); err != nil {
			logger.Error("scenario failed", "path", path, "err", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg appConfig, path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if cfg.Tail > 0 {
		s.Tail = cfg.Tail
	}

	log := logger.With("scenario", s.Name)
	b := sim.New(cfg.bench())
	b.Transport.OnSubmit = func(e sim.Emission) {
		log.Info("report",
			"at", e.At,
			"buttons", e.Report.Buttons,
			"dx", e.Report.DX,
			"dy", e.Report.DY,
			"wheel", e.Report.Wheel,
		)
	}
	s.Play(b)

	st := b.Decoder.Stats()
	snap := b.Device.Snapshot()
	log.Debug("decoder",
		"edges", st.Edges,
		"noise", st.Noise,
		"rejected", st.Rejected,
		"accepted", st.Accepted,
	)
	log.Debug("device",
		"state", snap.State,
		"velocity", snap.Velocity,
		"idle", snap.Idle,
		"ticks", b.Ticks(),
	)
	log.Info("done", "reports", len(b.Emissions()), "elapsed", b.Clock.Now())

	return s.Check(b.Reports())
}
