// Command compute runs the accelerator-backed streaming service: it
// loads configuration, opens the accelerator session manager, builds
// the detection or enhancement kernel depending on LOWLIGHT_ENHANCE,
// and serves the streaming RPC until an OS signal or a peer's
// STOP_STREAMING/REBOOT command requests shutdown.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/nikhs247/edgevision/internal/accel"
	"github.com/nikhs247/edgevision/internal/config"
	"github.com/nikhs247/edgevision/internal/kernel"
	"github.com/nikhs247/edgevision/internal/server"
)

// defaultClassNames names the four-class model of the current
// deployment (spec'd as a parameter, never a literal inside the
// kernel). Override with CLASS_NAMES (comma-separated) for a
// different graph.
var defaultClassNames = []string{"person", "vehicle", "package", "animal"}

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	configPath := "config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg := config.Load(configPath)

	classNames := defaultClassNames
	if v := os.Getenv("CLASS_NAMES"); v != "" {
		classNames = strings.Split(v, ",")
	}

	mgr := accel.NewManager()
	if err := mgr.Init(cfg.HEFPath); err != nil {
		slog.Error("accelerator init failed", "error", err, "hef_path", cfg.HEFPath)
		os.Exit(1)
	}
	defer mgr.Cleanup()

	session, err := mgr.DefaultSession()
	if err != nil {
		slog.Error("default session unavailable", "error", err)
		os.Exit(1)
	}

	threshold := kernel.NewThreshold(cfg.Threshold)

	var detector *kernel.Detector
	var enhancer *kernel.Enhancer
	if mgr.IsLowlightOnly() {
		enhancer = kernel.NewEnhancer(session)
	} else {
		detector = kernel.NewDetector(session, threshold, classNames)
	}

	computeServer := server.NewComputeServer(cfg.DeviceID, threshold, detector, enhancer, mgr.IsLowlightOnly(), cfg.WakeUpTarget, cfg.ForwardTarget)
	lifecycle := server.NewLifecycle(":"+cfg.GRPCPort, computeServer)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	ready := make(chan struct{})
	go func() {
		serveErr <- lifecycle.Start(ready)
	}()

	select {
	case <-ready:
		slog.Info("compute service listening", "port", cfg.GRPCPort, "device_id", cfg.DeviceID, "lowlight_only", mgr.IsLowlightOnly())
	case err := <-serveErr:
		slog.Error("listener failed to start", "error", err)
		os.Exit(1)
	}

	select {
	case <-sigChan:
		slog.Info("shutdown requested")
	case <-computeServer.ShutdownRequested():
		slog.Info("shutdown requested by peer")
	case err := <-serveErr:
		if err != nil {
			slog.Error("serve exited unexpectedly", "error", err)
		}
	}

	lifecycle.Shutdown()
	<-serveErr
	slog.Info("compute service stopped")
}
