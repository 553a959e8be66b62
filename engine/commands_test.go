package engine

import (
	"testing"

	"github.com/minaorangina/mindyourbusiness/deck"
	utils "github.com/minaorangina/mindyourbusiness/internal"
	"github.com/minaorangina/mindyourbusiness/protocol"
)

func TestParseCommand(t *testing.T) {
	t.Run("valid commands", func(t *testing.T) {
		tests := []struct {
			input string
			want  parsedCommand
		}{
			{"ask 7", parsedCommand{cmd: protocol.Ask, rank: deck.Seven}},
			{"  ASK   a ", parsedCommand{cmd: protocol.Ask, rank: deck.Ace}},
			{"ask 10", parsedCommand{cmd: protocol.Ask, rank: deck.Ten}},
			{"drop K", parsedCommand{cmd: protocol.Drop, rank: deck.King}},
			{"give j", parsedCommand{cmd: protocol.GiveCards, rank: deck.Jack}},
			{"askset Q", parsedCommand{cmd: protocol.AskSet, rank: deck.Queen}},
			{"draw", parsedCommand{cmd: protocol.Draw}},
			{"deal", parsedCommand{cmd: protocol.Deal}},
			{"mind your business!", parsedCommand{cmd: protocol.MindYourBusiness}},
			{"Mind  Your Business!", parsedCommand{cmd: protocol.MindYourBusiness}},
			{"hand", parsedCommand{local: showHand}},
			{"help", parsedCommand{local: showHelp}},
		}

		for _, tt := range tests {
			got, err := parseCommand(tt.input)
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, got, tt.want)
		}
	})

	t.Run("invalid commands", func(t *testing.T) {
		tests := []struct {
			input string
			want  error
		}{
			{"", ErrEmptyCommand},
			{"   ", ErrEmptyCommand},
			{"ask", ErrMissingRank},
			{"ask 7 8", ErrTooManyArgs},
			{"draw 7", ErrTooManyArgs},
			{"ask 1", deck.ErrInvalidRank},
			{"ask 11", deck.ErrInvalidRank},
			{"give Z", deck.ErrInvalidRank},
			{"mind your business", ErrUnknownCommand},
			{"mind your own business!", ErrUnknownCommand},
			{"fish 7", ErrUnknownCommand},
		}

		for _, tt := range tests {
			_, err := parseCommand(tt.input)
			utils.AssertErrorIs(t, err, tt.want)
		}
	})
}
