package main

import (
	"bufio"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/mhrabos/nebuloids/internal/config"
	"github.com/mhrabos/nebuloids/internal/draw"
	"github.com/mhrabos/nebuloids/internal/input"
	"github.com/mhrabos/nebuloids/internal/loop"
	"github.com/mhrabos/nebuloids/internal/shape"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})

	fps := config.GetEnvInt("NEBULOIDS_FPS", 60)
	seed := config.GetEnvInt64("NEBULOIDS_SEED", time.Now().UnixNano())
	color := config.GetEnvBool("NEBULOIDS_COLOR", true)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	rng := rand.New(rand.NewSource(seed))
	arena := shape.NewArena(rng)

	renderer := draw.NewTerminal(os.Stdout, arena, draw.TerminalOptions{
		NoColor: !color,
	})
	stream := input.StartStream(bufio.NewReader(os.Stdin))

	draw.HideCursor(os.Stdout)
	defer draw.ShowCursor(os.Stdout)
	draw.ClearScreen(os.Stdout)

	err = loop.Run(stream, renderer, loop.Options{
		FPS:    fps,
		Rng:    rng,
		Shapes: arena,
	})

	draw.ClearScreen(os.Stdout)
	_ = term.Restore(fd, oldState)

	if err != nil {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("goodbye", "fps", fps, "seed", seed)
}
