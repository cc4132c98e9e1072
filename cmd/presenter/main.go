// Command presenter reads a video file, streams frames to a compute
// peer, and overlays detection results (or a re-enhanced remote frame)
// in a preview window. Runtime keys: w/W starts streaming and triggers
// a remote wake-up, ESC exits.
package main

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"gocv.io/x/gocv"

	"github.com/nikhs247/edgevision/internal/client"
	"github.com/nikhs247/edgevision/internal/config"
)

const (
	keyNone = -1
	keyEsc  = 27
	keyW    = 'w'
	keyWUp  = 'W'
)

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

	if cfg.VideoPath == "" {
		slog.Error("no video path configured (set VIDEO_PATH)")
		os.Exit(1)
	}

	video, err := gocv.VideoCaptureFile(cfg.VideoPath)
	if err != nil {
		slog.Error("failed to open video capture file", "path", cfg.VideoPath, "error", err)
		os.Exit(1)
	}
	defer video.Close()

	streamClient := client.New(cfg.GRPCTarget, cfg.WakeUpTarget)
	if err := streamClient.Start(context.Background()); err != nil {
		slog.Error("failed to start stream client", "target", cfg.GRPCTarget, "error", err)
		os.Exit(1)
	}
	defer streamClient.Stop()

	window := gocv.NewWindow("edgevision presenter")
	defer window.Close()

	img := gocv.NewMat()
	defer img.Close()

	cameraID := cfg.DeviceID

	for {
		select {
		case <-streamClient.Terminated():
			slog.Info("peer requested termination")
			os.Exit(0)
		default:
		}

		if ok := video.Read(&img); !ok {
			slog.Info("video source closed", "path", cfg.VideoPath)
			break
		}
		if img.Empty() {
			continue
		}

		if !streamClient.SendFrame(img, cameraID) {
			slog.Warn("send frame failed, connection likely lost")
		}

		drawDetections(&img, streamClient)
		if remote, ok := streamClient.PopRemoteFrame(); ok {
			window.IMShow(remote)
			remote.Close()
		} else {
			window.IMShow(img)
		}

		switch window.WaitKey(1) {
		case keyEsc:
			slog.Info("exit requested")
			os.Exit(0)
		case keyW, keyWUp:
			streamClient.SendCommand("start_streaming")
			streamClient.SendCommand("wakeup")
		}
	}

	os.Exit(0)
}

func drawDetections(img *gocv.Mat, c *client.StreamClient) {
	w, h := float64(img.Cols()), float64(img.Rows())
	for _, record := range c.PopDetections() {
		for _, box := range record.Boxes {
			rect := image.Rect(
				int(box.X*w),
				int(box.Y*h),
				int((box.X+box.W)*w),
				int((box.Y+box.H)*h),
			)
			gocv.Rectangle(img, rect, color.RGBA{0, 255, 0, 0}, 2)
			gocv.PutText(img, box.Label, image.Pt(rect.Min.X, rect.Min.Y-4), gocv.FontHersheyPlain, 1.0, color.RGBA{0, 255, 0, 0}, 1)
		}
	}
}
