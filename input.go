package main

import "github.com/hajimehoshi/ebiten/v2"

// keyboard polls ebiten's key state and satisfies component.Keyboard.
type keyboard struct{}

func (keyboard) Left() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
}

func (keyboard) Right() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowRight)
}

func (keyboard) Fire() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

func restartPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEnter)
}
