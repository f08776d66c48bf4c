package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/game"
	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/replay"
)

func main() {
	assetsFlag := flag.String("assets", "", "Read configs and maps from this directory instead of the embedded copy")
	dbFlag := flag.String("db", "", "SQLite database for saves and settings (\":memory:\" allowed)")
	startFlag := flag.String("start", "", "View to start on (e.g., -start map)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	watchFlag := flag.Bool("watch", false, "Reload maps from -assets when they change")
	flag.Parse()

	a, err := newApp(appOptions{
		assetsDir: *assetsFlag,
		dbPath:    *dbFlag,
		startView: *startFlag,
		watch:     *watchFlag,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()

	var src input.Source = input.NewDeviceSource(a.keymap)
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if *startFlag == "" && data.StartView != "" {
			if err := a.setStart(data.StartView); err != nil {
				log.Fatalf("Failed to load replay: %v", err)
			}
		}
		src = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(data.Frames))
	}

	ctx := context.Background()
	if err := a.Start(ctx); err != nil {
		log.Fatalf("Failed to open %s: %v", a.start, err)
	}

	opts := game.Options{
		LogicalWidth:  a.cfg.Display.LogicalWidth,
		LogicalHeight: a.cfg.Display.LogicalHeight,
		Viewport:      a.viewport,
		Renderer:      a.renderer,
	}
	var rec *replay.Recorder
	if *recordFlag != "" {
		rec = replay.NewRecorder(a.start.String(), time.Now())
		opts.Recorder = rec
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	g := game.New(ctx, a.manager, src, opts)

	ebiten.SetWindowSize(a.cfg.Display.LogicalWidth*2, a.cfg.Display.LogicalHeight*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(a.cfg.Display.Title)

	runErr := ebiten.RunGame(g)

	if rec != nil {
		if err := rec.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, rec.FrameCount())
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
