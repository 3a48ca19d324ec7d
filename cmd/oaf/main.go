// oaf runs the GBA video pipeline against simulated console hardware. It
// is the external collaborator the firmware core expects: it loads the
// configuration, provides storage and a frame source, and presents the
// display output in a window.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Exagone313/open-agb-firm/fsutil"
	"github.com/Exagone313/open-agb-firm/gfx"
	"github.com/Exagone313/open-agb-firm/gx"
	"github.com/Exagone313/open-agb-firm/hid"
	"github.com/Exagone313/open-agb-firm/host"
	"github.com/Exagone313/open-agb-firm/lgycap"
	"github.com/Exagone313/open-agb-firm/mcu"
	"github.com/Exagone313/open-agb-firm/video"
)

var (
	version = "0.1.0"
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "oaf",
	Short: "GBA video pipeline simulator",
	Long:  "oaf - runs the open_agb_firm video pipeline on simulated hardware",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the video pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("oaf v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "storage root (simulated SD card)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads config.ini from the storage root. A missing file means
// stock settings.
func loadConfig() (video.Config, error) {
	cfg := video.DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("ini")
	v.AddConfigPath(rootDir)
	v.SetDefault("video.scaler", int(cfg.Scaler))
	v.SetDefault("video.gbaGamma", cfg.GbaGamma)
	v.SetDefault("video.lcdGamma", cfg.LcdGamma)
	v.SetDefault("video.contrast", cfg.Contrast)
	v.SetDefault("video.brightness", cfg.Brightness)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
	}

	cfg.Scaler = uint8(v.GetInt("video.scaler"))
	cfg.GbaGamma = v.GetFloat64("video.gbaGamma")
	cfg.LcdGamma = v.GetFloat64("video.lcdGamma")
	cfg.Contrast = v.GetFloat64("video.contrast")
	cfg.Brightness = v.GetFloat64("video.brightness")
	return cfg, nil
}

func run() error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine := gx.NewSim()
	capture := lgycap.NewSim(engine.FrameTex())
	display := gfx.NewSim()
	buttons := &hid.Sim{}
	sysmcu := &mcu.Sim{Model: mcu.Model3DS}

	p, err := video.Init(cfg, video.Hardware{
		GX:  engine,
		GFX: display,
		Cap: capture,
		HID: buttons,
		MCU: sysmcu,
	}, fsutil.Dir(rootDir), log)
	if err != nil {
		return err
	}
	defer p.Exit()

	// Emit a test frame at the GBA's refresh rate until the window
	// closes.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		tick := time.NewTicker(time.Second / 60)
		defer tick.Stop()
		for t := 0; ; t++ {
			select {
			case <-stop:
				return
			case <-tick.C:
			}
			c := capture.Config()
			capture.Feed(host.TestFrame(t, int(c.Width), int(c.Height)))
		}
	}()

	return host.Run(host.NewViewer(display, buttons), "open_agb_firm")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
