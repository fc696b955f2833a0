//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"langton-ant/internal/app"
	"langton-ant/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bad arguments are reported on stdout and the program ends normally, as it
// does after -h.
func main() {
	cfg, err := app.ParseArgs(os.Args, os.Stdout)
	if err != nil {
		return
	}

	status := ui.NewStatusLine(os.Stdout)
	game, err := app.New(cfg, status)
	if err != nil {
		fmt.Println(err)
		return
	}

	ebiten.SetWindowTitle("Langton's ant")
	ebiten.SetWindowSize(cfg.Window.W, cfg.Window.H)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.LoopTPS())

	status.Help()
	err = ebiten.RunGame(game)
	status.Finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
