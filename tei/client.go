package tei

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/notation"
	"golang.org/x/net/context"
)

// Client drives an engine speaking this protocol, either a child
// process or any reader/writer pair.
type Client struct {
	cmd *exec.Cmd

	stdinPipe  io.WriteCloser
	stdoutPipe io.ReadCloser

	read  *bufio.Reader
	write io.Writer

	gameid int
}

func NewClient(cmdline []string) (*Client, error) {
	cmd := &exec.Cmd{
		Args: cmdline,
	}
	if path, err := exec.LookPath(cmdline[0]); err != nil {
		return nil, err
	} else {
		cmd.Path = path
	}

	cl := &Client{
		cmd: cmd,
	}

	if stdin, err := cmd.StdinPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdinPipe = stdin
		cl.write = stdin
	}

	if stdout, err := cmd.StdoutPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdoutPipe = stdout
		cl.read = bufio.NewReader(stdout)
	}

	if err := cl.cmd.Start(); err != nil {
		cl.Close()
		return nil, err
	}
	if err := cl.handshake(); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

// NewClientIO talks to an engine reading w and writing r.
func NewClientIO(r io.Reader, w io.Writer) (*Client, error) {
	cl := &Client{
		read:  bufio.NewReader(r),
		write: w,
	}
	if err := cl.handshake(); err != nil {
		return nil, err
	}
	return cl, nil
}

func (c *Client) handshake() error {
	_, err := c.sendCommand("tei", "teiok")
	return err
}

// NewGame starts a game on an N-by-N board with win length k (0 for
// the default) and returns a player bound to it.
func (c *Client) NewGame(size, k int) (ai.Player, error) {
	c.gameid++
	if _, err := c.sendCommand(fmt.Sprintf("teinewgame %d %d", size, k), ""); err != nil {
		return nil, err
	}
	return &player{
		client: c,
		gameid: c.gameid,
	}, nil
}

// Ready blocks until the engine has processed every earlier command.
func (c *Client) Ready() error {
	_, err := c.sendCommand("isready", "readyok")
	return err
}

func (c *Client) Close() {
	if c.write != nil {
		c.sendCommand("quit", "")
	}
	if c.stdinPipe != nil {
		c.stdinPipe.Close()
	}
	if c.stdoutPipe != nil {
		c.stdoutPipe.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Wait()
	}
}

func (c *Client) sendCommand(cmd string, expect string) ([]string, error) {
	if _, err := fmt.Fprintln(c.write, cmd); err != nil {
		return nil, err
	}
	if expect == "" {
		return nil, nil
	}

	for {
		line, err := c.read.ReadString('\n')
		if err != nil {
			return nil, err
		}
		words := strings.Fields(line)
		if len(words) > 0 && words[0] == expect {
			return words, nil
		}
	}
}

type player struct {
	client *Client
	gameid int
}

func (p *player) GetMove(ctx context.Context, b *kinarow.Board, self kinarow.Cell) kinarow.Move {
	if p.gameid != p.client.gameid {
		panic("bad gameid: calling GetMove on a dead player")
	}
	pos := fmt.Sprintf("position board %s", notation.FormatBoard(b))
	if _, err := p.client.sendCommand(pos, ""); err != nil {
		panic(fmt.Sprintf("send position: %v", err))
	}
	bestmove, err := p.client.sendCommand("go "+notation.FormatMark(self), "bestmove")
	if err != nil {
		panic(fmt.Sprintf("go: %v", err))
	}
	if len(bestmove) != 2 {
		panic("bad bestmove")
	}
	mv, err := notation.ParseMove(bestmove[1])
	if err != nil {
		panic(fmt.Sprintf("unable to parse move: %q", bestmove[1]))
	}
	return mv
}

// Close shuts down the client the player was created from.
func (p *player) Close() error {
	p.client.Close()
	return nil
}
