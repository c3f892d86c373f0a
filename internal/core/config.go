package core

// RuntimeConfig is what the platform tells a game when a session starts.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Frames per second
	Seed     int64 // Seeds enemy placement; the platform picks one when 0
}

// GameState is the part of the game the platform cares about.
type GameState struct {
	Score    int  // Enemy tanks destroyed
	GameOver bool // The player's own tank was hit
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
