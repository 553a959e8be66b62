package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minaorangina/mindyourbusiness/deck"
	"github.com/minaorangina/mindyourbusiness/protocol"
)

var (
	ErrEmptyCommand   = errors.New("no command entered")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingRank    = errors.New("this command needs a rank, e.g. 'ask 7'")
	ErrTooManyArgs    = errors.New("too many words in command")
)

const mindYourBusinessPhrase = "mind your business!"

// localCmd is handled by the console without involving the game
type localCmd int

const (
	noLocalCmd localCmd = iota
	showHand
	showHelp
)

type parsedCommand struct {
	cmd   protocol.Cmd
	rank  deck.Rank
	local localCmd
}

var rankedCommands = map[string]protocol.Cmd{
	"ask":    protocol.Ask,
	"drop":   protocol.Drop,
	"give":   protocol.GiveCards,
	"askset": protocol.AskSet,
}

var bareCommands = map[string]protocol.Cmd{
	"deal": protocol.Deal,
	"draw": protocol.Draw,
}

// parseCommand turns a line of console input into a command.
// Command words are case-insensitive.
func parseCommand(line string) (parsedCommand, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return parsedCommand{}, ErrEmptyCommand
	}

	phrase := strings.Join(fields, " ")
	if phrase == mindYourBusinessPhrase {
		return parsedCommand{cmd: protocol.MindYourBusiness}, nil
	}
	if strings.HasPrefix(phrase, "mind") {
		return parsedCommand{}, fmt.Errorf("%w: please type '%s'", ErrUnknownCommand, mindYourBusinessPhrase)
	}

	word, args := fields[0], fields[1:]

	switch word {
	case "hand":
		return parsedCommand{local: showHand}, nil
	case "help":
		return parsedCommand{local: showHelp}, nil
	}

	if cmd, ok := bareCommands[word]; ok {
		if len(args) > 0 {
			return parsedCommand{}, fmt.Errorf("%w: '%s' takes no rank", ErrTooManyArgs, word)
		}
		return parsedCommand{cmd: cmd}, nil
	}

	if cmd, ok := rankedCommands[word]; ok {
		switch {
		case len(args) == 0:
			return parsedCommand{}, ErrMissingRank
		case len(args) > 1:
			return parsedCommand{}, ErrTooManyArgs
		}

		rank, err := deck.ParseRank(args[0])
		if err != nil {
			return parsedCommand{}, err
		}
		return parsedCommand{cmd: cmd, rank: rank}, nil
	}

	return parsedCommand{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}
