package main

import (
	"image"
	"os"

	"github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/crash"
	"github.com/automoto/scrollctl/fonts"
	"github.com/automoto/scrollctl/scenes"
	"github.com/automoto/scrollctl/systems"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(log logrus.FieldLogger, prefs *systems.SavedPreferences) *Game {
	return &Game{
		scene: scenes.NewScrollScene(log, prefs),
	}
}

func (g *Game) Update() error {
	return crash.Guard(sentry.CurrentHub(), func() error {
		g.scene.Update()
		return nil
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("SCROLLCTL_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}
	systems.SetLogger(log)

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.WithError(err).Warn("could not initialize sentry")
		}
		defer sentry.Flush(crash.FlushTimeout)
		defer sentry.Recover()
	}

	if os.Getenv(config.Stats.EnvVar) != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(config.Stats.Addr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.WithError(err).Fatal("could not load fonts")
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	var prefs *systems.SavedPreferences
	if err := systems.InitPersistence(config.C.Title); err == nil {
		prefs, _ = systems.LoadPreferences()
	}

	if err := ebiten.RunGame(NewGame(log, prefs)); err != nil {
		crash.Report(sentry.CurrentHub(), err)
		log.WithError(err).Fatal("game exited")
	}
}
