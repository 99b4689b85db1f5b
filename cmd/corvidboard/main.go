//
// Corvid - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Command corvidboard is a small terminal viewer over the search core.
// It is not part of the UCI protocol surface (cmd/corvid is); it exists
// so the engine can be driven and watched without a GUI attached.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkuhlmann/corvid/internal/movegen"
	"github.com/dkuhlmann/corvid/internal/position"
	"github.com/dkuhlmann/corvid/internal/search"
	. "github.com/dkuhlmann/corvid/internal/types"
)

var (
	boardStyle = lipgloss.NewStyle().Padding(0, 1)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// model is the bubbletea state for the viewer: the position being
// driven, the move generator used to parse input, the search engine,
// an input line, and the last status/result line shown under the board.
type model struct {
	pos     *position.Position
	moveGen *movegen.Movegen
	eng     *search.Search

	input  string
	status string
	quit   bool
}

func initialModel() model {
	return model{
		pos:     position.NewPosition(),
		moveGen: movegen.NewMoveGen(),
		eng:     search.NewSearch(),
		status:  "ready",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.status = m.runLine(strings.TrimSpace(m.input))
		m.input = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.input += keyMsg.String()
		return m, nil
	}
	return m, nil
}

// runLine accepts either a long-algebraic move ("e2e4", "e7e8q"), a
// "go depth N" / "go movetime N" search request, or "new"/"fen <fen>"
// to reset the position. It mirrors the subset of the UCI command
// surface that cmd/corvid exposes (set_position, search), driving the
// exact same position/search operations through a different front end.
func (m *model) runLine(line string) string {
	if line == "" {
		return m.status
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "new":
		m.pos = position.NewPosition()
		return "new game"
	case "fen":
		fen := strings.TrimPrefix(line, "fen")
		p, err := position.NewPositionFen(strings.TrimSpace(fen))
		if err != nil {
			return errStyle.Render(fmt.Sprintf("invalid fen: %v", err))
		}
		m.pos = p
		return "position loaded"
	case "go":
		return m.runSearch(fields[1:])
	default:
		return m.runMove(fields[0])
	}
}

func (m *model) runMove(uciMove string) string {
	mv := m.moveGen.GetMoveFromUci(m.pos, uciMove)
	if !mv.IsValid() {
		return errStyle.Render(fmt.Sprintf("illegal or malformed move: %s", uciMove))
	}
	m.pos.DoMove(mv)
	return fmt.Sprintf("played %s", mv.StringUci())
}

func (m *model) runSearch(args []string) string {
	limits := search.NewSearchLimits()
	limits.Depth = 6
	for i := 0; i+1 < len(args); i += 2 {
		switch args[i] {
		case "depth":
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				limits.Depth = d
			}
		case "movetime":
			if ms, err := strconv.Atoi(args[i+1]); err == nil {
				limits.MoveTime = time.Duration(ms) * time.Millisecond
				limits.TimeControl = true
			}
		}
	}
	m.eng.StartSearch(*m.pos, *limits)
	m.eng.WaitWhileSearching()
	result := m.eng.LastSearchResult()
	if result.BestMove == MoveNone {
		return "no legal move (mate or stalemate)"
	}
	m.pos.DoMove(result.BestMove)
	return bestStyle.Render(fmt.Sprintf("engine plays %s (%s)", result.BestMove.StringUci(), result.BestValue.String()))
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(boardStyle.Render(m.pos.StringBoard()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("%s to move  |  %s", m.pos.NextPlayer().String(), m.status)))
	b.WriteString("\n> ")
	b.WriteString(m.input)
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("enter a move (e2e4), 'go depth N', 'go movetime MS', 'new', or 'fen <fen>'; esc to quit"))
	return b.String()
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "corvidboard: ", err)
		os.Exit(1)
	}
}
