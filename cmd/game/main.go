package main

import (
	"flag"
	"log"

	"github.com/davekift/turtle-adventure/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var level int
	flag.IntVar(&level, "level", 1, "difficulty level (spawn kind, cadence and spacing derive from it)")
	flag.Parse()

	if level < 1 {
		log.Fatal("error: -level must be >= 1")
	}

	ebiten.SetWindowTitle("Turtle Adventure")
	ebiten.SetWindowSize(848, 648)
	if err := ebiten.RunGame(game.New(level)); err != nil {
		log.Fatal(err)
	}
}
