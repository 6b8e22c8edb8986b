// Package shell implements the command interpreter behind the simulated
// terminal: a fixed verb table, a navigation state machine, and an
// append-only scrollback. Nothing here is fatal; every unrecognized input
// degrades to a "not found" line in the scrollback.
package shell

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/askel4dd/termfolio/internal/content"
	"github.com/askel4dd/termfolio/internal/logging"
)

// Literal hosts recognized by the telnet command.
const (
	TelnetEasterEggHost = "towel.blinkenlights.nl"
	TelnetContactHost   = "me"
)

// HelpText is the fixed output of the help command.
const HelpText = "available commands: help, ls, cd <section>, view <project>, telnet <host>, fortune"

// Interpreter evaluates submitted lines against a session. The command
// table is fixed; the registries are read-only. Evaluation is synchronous
// and, apart from fortune, deterministic.
type Interpreter struct {
	reg  *content.Registry
	pick func(n int) int
	log  zerolog.Logger
}

// NewInterpreter builds an interpreter over the given content registry.
func NewInterpreter(reg *content.Registry) *Interpreter {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Interpreter{
		reg:  reg,
		pick: rng.Intn,
		log:  logging.Component("shell"),
	}
}

// Eval parses and evaluates one submitted line, mutates the session, and
// appends exactly one history entry, which it also returns. Whitespace-only
// input appends a blank entry and changes nothing.
func (it *Interpreter) Eval(sess *Session, raw string) HistoryEntry {
	verb, arg := splitCommand(raw)

	entry := HistoryEntry{Input: raw}
	if verb == "" {
		sess.appendHistory(entry)
		return entry
	}

	it.log.Debug().Str("verb", verb).Str("arg", arg).Msg("eval")

	switch verb {
	case "view":
		if _, ok := it.reg.Project(arg); ok {
			sess.SelectProject(arg)
		}
		// Invalid or missing keys stay silent; only cd and telnet
		// report bad targets.
	case "ls":
		// Nothing to list: the filesystem is a metaphor.
	case "cd":
		if sec, ok := ParseSection(arg); ok {
			sess.EnterSection(sec)
		} else {
			entry.Output = fmt.Sprintf("no such file or directory: %s", arg)
		}
	case "help":
		entry.Output = HelpText
	case "fortune":
		fortunes := it.reg.Fortunes()
		entry.Output = fortunes[it.pick(len(fortunes))]
	case "telnet":
		switch arg {
		case TelnetEasterEggHost:
			entry.Output = it.reg.TelnetBanner()
		case TelnetContactHost:
			sess.EnterSection(SectionContact)
		default:
			entry.Output = fmt.Sprintf("could not connect to host: %s", arg)
		}
	default:
		entry.Output = fmt.Sprintf("command not found: %s", verb)
	}

	sess.appendHistory(entry)
	return entry
}

// splitCommand trims the line and splits it on runs of whitespace into a
// verb and at most one argument; tokens past the second are ignored.
func splitCommand(raw string) (verb, arg string) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], fields[1]
}
