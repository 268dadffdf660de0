// Minimal UCI front end for the engine. Speaks enough of the protocol for
// cutechess-cli and similar drivers: uci, isready, setoption, ucinewgame,
// position, go, quit. Search is synchronous, so "stop" has nothing to cancel.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	"github.com/pramod-motupalli/Chess.IO/engine"
)

var uci chess.UCINotation

func main() {
	log.SetFlags(0)
	log.SetPrefix("uci: ")

	pos := chess.StartingPosition()
	depth := engine.Medium.Depth()

	in := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	send := func(format string, args ...any) {
		fmt.Fprintf(out, format+"\n", args...)
		out.Flush()
	}

	for in.Scan() {
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "uci":
			send("id name chessio")
			send("id author chessio")
			send("option name Depth type spin default %d min 1 max 6", depth)
			send("uciok")
		case "isready":
			send("readyok")
		case "setoption":
			// setoption name Depth value N
			if len(fields) >= 5 && strings.EqualFold(fields[2], "Depth") {
				if v, err := strconv.Atoi(fields[4]); err == nil && v >= 1 && v <= 6 {
					depth = v
				}
			}
		case "ucinewgame":
			pos = chess.StartingPosition()
		case "position":
			p, err := parsePosition(fields[1:])
			if err != nil {
				log.Printf("position: %v", err)
				continue
			}
			pos = p
		case "go":
			if len(pos.ValidMoves()) == 0 {
				send("bestmove 0000")
				continue
			}
			score, pv := engine.Search(pos, depth)
			if len(pv) == 0 {
				// Drawn by rule at the root; nothing to play.
				send("bestmove 0000")
				continue
			}
			send("info depth %d %s pv %s", depth, uciScore(score), pvString(pv))
			send("bestmove %s", uci.Encode(nil, pv[0]))
		case "stop":
		case "quit":
			return
		}
	}
}

func uciScore(score int) string {
	if engine.IsMateScore(score) {
		mate := (engine.MateScore - score + 1) / 2
		if score < 0 {
			mate = -(engine.MateScore + score + 1) / 2
		}
		return fmt.Sprintf("score mate %d", mate)
	}
	return fmt.Sprintf("score cp %d", score)
}

func pvString(pv []*chess.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = uci.Encode(nil, m)
	}
	return strings.Join(parts, " ")
}

// parsePosition handles "startpos [moves ...]" and "fen <6 fields> [moves ...]".
func parsePosition(args []string) (*chess.Position, error) {
	if len(args) == 0 {
		return nil, errors.New("empty position command")
	}

	var pos *chess.Position
	rest := args
	switch args[0] {
	case "startpos":
		pos = chess.StartingPosition()
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			return nil, errors.New("fen needs six fields")
		}
		p, err := engine.PositionFromFEN(strings.Join(args[1:7], " "))
		if err != nil {
			return nil, err
		}
		pos = p
		rest = args[7:]
	default:
		return nil, fmt.Errorf("unknown position kind %q", args[0])
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, u := range rest[1:] {
			m, err := moveFromUCI(pos, u)
			if err != nil {
				return nil, err
			}
			pos = pos.Update(m)
		}
	}
	return pos, nil
}

func moveFromUCI(pos *chess.Position, u string) (*chess.Move, error) {
	for _, m := range pos.ValidMoves() {
		if uci.Encode(nil, m) == u {
			return m, nil
		}
	}
	return nil, fmt.Errorf("illegal move %q", u)
}
