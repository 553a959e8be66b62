package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/minaorangina/mindyourbusiness/protocol"
	"github.com/pterm/pterm"
)

type inputLine struct {
	text string
	err  error
}

// CLIPlayer is a person playing at the console
type CLIPlayer struct {
	id   string
	name string
	in   io.Reader
	out  io.Writer

	lines    chan inputLine
	once     sync.Once
	stop     chan struct{}
	stopOnce sync.Once
	// most recent state seen, for 'hand'
	last protocol.OutboundMessage
}

func NewCLIPlayer(id, name string, in io.Reader, out io.Writer) *CLIPlayer {
	return &CLIPlayer{
		id:   id,
		name: name,
		in:   in,
		out:  out,
	}
}

func (p *CLIPlayer) ID() string {
	return p.id
}

func (p *CLIPlayer) Name() string {
	return p.name
}

func (p *CLIPlayer) Info() protocol.PlayerInfo {
	return protocol.PlayerInfo{PlayerID: p.id, Name: p.name}
}

func (p *CLIPlayer) Send(msg protocol.OutboundMessage) error {
	p.last = msg

	switch msg.Command {
	case protocol.Deal:
		SendText(p.out, "%s", pterm.Info.Sprintfln(welcomeText, p.name))
		SendText(p.out, "%s", renderMessage(msg))
		SendText(p.out, "%s", renderTable(msg))
	case protocol.EndOfTurn, protocol.PhaseTwo:
		SendText(p.out, "%s", renderMessage(msg))
		SendText(p.out, "%s", renderTable(msg))
	default:
		SendText(p.out, "%s", renderMessage(msg))
	}

	return nil
}

func (p *CLIPlayer) Respond(ctx context.Context, msg protocol.OutboundMessage) (protocol.InboundMessage, error) {
	p.last = msg

	if msg.Error == "" && msg.Command != protocol.MindYourBusiness && msg.Command != protocol.Draw {
		SendText(p.out, "%s", renderTable(msg))
	}
	SendText(p.out, "%s", renderPrompt(msg))

	for {
		line, err := p.readLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				SendText(p.out, "\n%s\n", goodbyeText)
				return protocol.InboundMessage{}, fmt.Errorf("%w: %w", ErrPlayerQuit, err)
			}
			return protocol.InboundMessage{}, err
		}

		parsed, err := parseCommand(line)
		if err != nil {
			SendText(p.out, "%s", pterm.Warning.Sprintln(err.Error())+"> ")
			continue
		}

		switch parsed.local {
		case showHand:
			SendText(p.out, "%s", renderTable(p.last)+"> ")
			continue
		case showHelp:
			SendText(p.out, "%s", helpText+"\n> ")
			continue
		}

		if parsed.cmd == protocol.Deal {
			SendText(p.out, "%s", pterm.Warning.Sprintln(dealtText)+"> ")
			continue
		}

		return protocol.InboundMessage{
			PlayerID: p.id,
			Command:  parsed.cmd,
			Rank:     parsed.rank,
		}, nil
	}
}

// readLine waits for the next line of input. Reading happens in the
// background so that a cancelled context isn't stuck behind a blocking read.
// Once a read has been cancelled the player takes no more input.
func (p *CLIPlayer) readLine(ctx context.Context) (string, error) {
	p.once.Do(func() {
		p.lines = make(chan inputLine)
		p.stop = make(chan struct{})
		go p.scan()
	})

	select {
	case <-ctx.Done():
		p.stopOnce.Do(func() { close(p.stop) })
		return "", ctx.Err()
	case <-p.stop:
		return "", ErrPlayerQuit
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// scan feeds lines to readLine until input ends or reading is stopped
func (p *CLIPlayer) scan() {
	defer close(p.lines)

	send := func(l inputLine) bool {
		select {
		case <-p.stop:
			return false
		default:
		}

		select {
		case p.lines <- l:
			return true
		case <-p.stop:
			return false
		}
	}

	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		if !send(inputLine{text: scanner.Text()}) {
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	send(inputLine{err: err})
}
