// Package input maps key names and text scripts onto board commands.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"sandtris/internal/core"
)

// Command is one player or clock action applied to a sim.
type Command uint8

const (
	None Command = iota
	Advance
	Left
	Right
	Rotate
)

func (c Command) String() string {
	switch c {
	case Advance:
		return "advance"
	case Left:
		return "left"
	case Right:
		return "right"
	case Rotate:
		return "rotate"
	default:
		return "none"
	}
}

// FromKey maps a key name to its command. Only the three arrow keys that
// steer the piece are bound; every other key maps to None.
func FromKey(name string) Command {
	switch name {
	case "ArrowLeft":
		return Left
	case "ArrowRight":
		return Right
	case "ArrowUp":
		return Rotate
	default:
		return None
	}
}

// Apply runs cmd against sim and reports whether it was a real command.
func Apply(sim core.Sim, cmd Command) bool {
	switch cmd {
	case Advance:
		sim.Advance()
	case Left:
		sim.Left()
	case Right:
		sim.Right()
	case Rotate:
		sim.Rotate()
	default:
		return false
	}
	return true
}

// Run applies every command in order.
func Run(sim core.Sim, cmds []Command) {
	for _, c := range cmds {
		Apply(sim, c)
	}
}

// MaxRepeat bounds the "*N" count of a single script token.
const MaxRepeat = 10000

var scriptTokens = map[string]Command{
	"a": Advance, "advance": Advance, "d": Advance, "down": Advance,
	"l": Left, "left": Left,
	"r": Right, "right": Right,
	"u": Rotate, "rotate": Rotate, "up": Rotate,
}

// ParseScript reads a whitespace separated command list such as
// "a l*3 u r". A token may carry a "*N" repeat count. Lines starting with
// '#' are comments.
func ParseScript(script string) ([]Command, error) {
	var out []Command
	for n, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			name, count := strings.ToLower(tok), 1
			if i := strings.IndexByte(name, '*'); i >= 0 {
				parsed, err := strconv.Atoi(name[i+1:])
				if err != nil || parsed < 0 {
					return nil, fmt.Errorf("script line %d: bad repeat in %q", n+1, tok)
				}
				if parsed > MaxRepeat {
					return nil, fmt.Errorf("script line %d: repeat %d in %q exceeds %d", n+1, parsed, tok, MaxRepeat)
				}
				name, count = name[:i], parsed
			}
			cmd, ok := scriptTokens[name]
			if !ok {
				return nil, fmt.Errorf("script line %d: unknown command %q", n+1, tok)
			}
			for range count {
				out = append(out, cmd)
			}
		}
	}
	return out, nil
}
