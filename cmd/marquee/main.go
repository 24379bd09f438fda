// Command marquee runs the seamless looping treatment rail in the terminal
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/audio"
	"github.com/lixenwraith/marquee/config"
	"github.com/lixenwraith/marquee/constants"
	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/engine"
	"github.com/lixenwraith/marquee/feed"
	"github.com/lixenwraith/marquee/log"
	"github.com/lixenwraith/marquee/marquee"
	"github.com/lixenwraith/marquee/rail"
)

type app struct {
	screen  tcell.Screen
	host    *rail.Host
	marquee *marquee.Marquee
	sound   *audio.SoundManager
	clock   *engine.FrameClock
	log     *log.Logger
	items   []feed.Treatment
}

func main() {
	cfg := config.Default()
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	cfg.LoadEnv()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	items := loadFeed(cfg, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.RegisterScreen(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	a := newApp(cfg, screen, items, logger)
	defer a.sound.Cleanup()

	a.run()
	a.marquee.Destroy()
	core.RegisterScreen(nil)
}

func openLog(cfg *config.Config) (*log.Logger, func(), error) {
	if cfg.LogPath == "" {
		return log.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.LogPath, err)
	}
	return log.New(f, log.LevelFromString(cfg.LogLevel)), func() { f.Close() }, nil
}

// loadFeed reads the configured feed, falling back to the built-in list, and arranges it
func loadFeed(cfg *config.Config, logger *log.Logger) []feed.Treatment {
	flog := logger.With("feed")

	data := feed.Default()
	if cfg.DataPath != "" {
		loaded, err := feed.LoadFile(cfg.DataPath)
		if err != nil {
			flog.Errorf("using built-in treatments: %v", err)
		} else {
			data = loaded
		}
	}

	orderer := &feed.Orderer{
		CachePath: cfg.CachePath,
		Dev:       cfg.Dev,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Log:       flog,
	}
	items := orderer.Arrange(data)
	flog.Infof("loaded %d treatments, %d rail items", len(data), len(items))
	return items
}

func newApp(cfg *config.Config, screen tcell.Screen, items []feed.Treatment, logger *log.Logger) *app {
	labels := make([]string, len(items))
	for i, t := range items {
		labels[i] = t.Label()
	}

	a := &app{
		screen: screen,
		host: rail.NewHost(screen, labels, rail.Options{
			Row:       cfg.RailRow,
			ColorMode: rail.ParseColorMode(cfg.ColorMode),
		}),
		sound: audio.NewSoundManager(cfg.AudioEnabled, cfg.MasterVolume),
		clock: engine.NewFrameClock(engine.NewMonotonicTimeProvider(), constants.MaxFrameDelta),
		log:   logger,
		items: items,
	}

	if err := a.sound.Initialize(); err != nil {
		logger.Errorf("audio unavailable: %v", err)
	}

	a.marquee = marquee.New(a.host, marquee.Options{
		Timeline: cfg.Timeline(),
		Logger:   logger,
		OnSettle: a.sound.PlayTick,
		OnBurst:  a.sound.PlayBurst,
		OnRebuild: func(n int) {
			logger.Debugf("rail rebuilt with %d items", n)
		},
	})
	return a
}

func (a *app) run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	})

	// Layout settles on the first frame, the loop is built on it
	a.host.RequestFrame(a.marquee.Start)

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

// handleEvent returns false when the program should exit
func (a *app) handleEvent(ev tcell.Event) bool {
	if a.host.Dispatch(ev) {
		// Resize listeners only exist once a rail was built, so a screen
		// that was too short at startup is retried here
		if _, ok := ev.(*tcell.EventResize); ok && !a.marquee.Active() {
			a.marquee.Start()
		}
		return true
	}

	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		a.marquee.Next()
	case tcell.KeyLeft:
		a.marquee.Previous()
	case tcell.KeyHome:
		a.marquee.ToIndex(0)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return false
		case 'p':
			if a.clock.IsPaused() {
				a.clock.Resume()
			} else {
				a.clock.Pause()
			}
		case 'r':
			a.marquee.Start()
		}
	}
	return true
}

func (a *app) frame() {
	dt := a.clock.Tick()

	a.host.RunFrames()
	a.marquee.Frame(dt)

	a.host.SetCurrent(a.marquee.Current())
	a.host.SetStatus(a.status())
	a.host.Draw()
	a.screen.Show()
}

func (a *app) status() string {
	if !a.marquee.Active() {
		return " waiting for rail  [q] quit"
	}
	label := ""
	if i := a.marquee.Current(); i >= 0 && i < len(a.items) {
		label = a.items[i].Label()
	}
	paused := ""
	if a.clock.IsPaused() {
		paused = "  PAUSED"
	}
	return fmt.Sprintf(" %s  rate %+.2f  t %.2fs  %s%s  [←/→] seek [home] first [p] pause [q] quit",
		label, a.marquee.Rate(), a.marquee.Time(), a.marquee.Phase(), paused)
}
