package game

import "github.com/minaorangina/mindyourbusiness/protocol"

// Phase represents the main stages in the game
type Phase = protocol.Phase

const (
	trading     = protocol.PhaseTrading
	setClaiming = protocol.PhaseSetClaiming
)

type GamePlayState int

const (
	gameNotStarted GamePlayState = iota
	gameStarted
	gameOver
)

// drawReason records why the current player has been told to draw
type drawReason int

const (
	noDraw drawReason = iota
	drawAfterMiss
	drawToReplenish
)
