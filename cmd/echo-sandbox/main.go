package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/echo-sandbox/audio"
	"github.com/lixenwraith/echo-sandbox/config"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/parameter"
	"github.com/lixenwraith/echo-sandbox/service"
	"github.com/lixenwraith/echo-sandbox/session"
)

var (
	configPath string
	debugFlag  bool
	muteFlag   bool
	fpsFlag    int
)

var rootCmd = &cobra.Command{
	Use:           "echo-sandbox",
	Short:         "Terminal sandbox with time-delayed echoes of the player",
	Long:          "Walk a box across the ground plane. Spawn a clone that holds your position for a few seconds, or a phantom that replays your last moves.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a .toml or .yaml config file")
	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false, "write debug logs to "+logDir+"/"+logFileName)
	rootCmd.Flags().BoolVar(&muteFlag, "mute", false, "disable audio output")
	rootCmd.Flags().IntVar(&fpsFlag, "fps", 0, fmt.Sprintf("tick rate override (1-%d)", parameter.MaxTickRate))
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "echo-sandbox: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies command-line overrides on top of the layered configuration
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugFlag
	}
	if muteFlag {
		cfg.Audio.Enabled = false
	}
	if cmd.Flags().Changed("fps") {
		cfg.Loop.TickRate = fpsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	defer func() { _ = logger.Sync() }()

	hub := service.NewHub(logger)
	term := newTerminal()
	player := newAudio(cfg, logger)
	if err := hub.Register(term); err != nil {
		return err
	}
	if ae, ok := player.(*audio.AudioEngine); ok {
		if err := hub.Register(ae); err != nil {
			return err
		}
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer func() {
		if err := hub.StopAll(); err != nil {
			logger.Warn("service shutdown", zap.Error(err))
		}
	}()
	screen := term.screen

	sess, err := session.New(cfg, session.Options{
		Audio:  player,
		Screen: screen,
		Logger: logger,
	})
	if err != nil {
		logger.Error("session setup failed", zap.Error(err))
		return err
	}
	logger.Info("session started", zap.Stringer("session", sess.ID), zap.Int("tick_rate", cfg.Loop.TickRate))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan session.Event, parameter.EventQueueSize)
	core.Go(func() { pollEvents(ctx, screen, events) })

	if err := sess.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newAudio returns the sound sink; a disabled config yields a silent player
func newAudio(cfg *config.Config, logger *zap.Logger) audio.Player {
	if !cfg.Audio.Enabled {
		return &audio.NoopPlayer{}
	}
	acfg := audio.DefaultAudioConfig()
	acfg.MasterVolume = cfg.Audio.MasterVolume
	return audio.NewAudioEngine(acfg, logger)
}

// pollEvents forwards terminal events until the screen is finalized or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- session.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		sev, ok := session.EventFromTcell(ev)
		if !ok {
			continue
		}
		select {
		case out <- sev:
		case <-ctx.Done():
			return
		}
	}
}
