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

// Package types holds the fundamental data types shared across the engine:
// squares, bitboards, pieces, moves, castling rights and evaluation values.
package types

// Value is a centipawn evaluation or search score.
type Value int16

// Bounds and sentinels for Value.
const (
	ValueZero   Value = 0
	ValueDraw   Value = 0
	ValueInf    Value = 32000
	ValueMate   Value = 31000
	ValueNA     Value = 32001
	ValueMaxLen       = 30000 // static evaluator output is clamped to +/- this
	ValueMax    Value = 32767 // highest move sort value - reserved for the PV move
	ValueMin    Value = -ValueInf
	ValueCheckMate Value = ValueMate // mate score at the root (ply 0)
)

// MateIn returns the mate score for delivering mate in the given number of plies.
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn returns the mate score for being mated in the given number of plies.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}

// IsMateValue reports whether v represents a mate score (as opposed to a
// normal material/positional evaluation).
func IsMateValue(v Value) bool {
	return v > ValueMate-Value(MaxDepth) || v < -ValueMate+Value(MaxDepth)
}

// IsValid reports whether v is within the representable evaluation range,
// excluding the ValueNA sentinel.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// SqLength is the number of squares on a chess board.
const SqLength = 64

// MaxMoves is a generous upper bound for the number of pseudo-legal moves
// in any reachable chess position - used to size move list backing arrays.
const MaxMoves = 256

// MaxDepth is the maximum search depth supported by the iterative deepening
// driver and the arrays indexed by ply (killers, PV, etc.).
const MaxDepth = 128

// MaxHistory is the maximum number of plies a Position can track on its
// internal undo stack (make/unmake history).
const MaxHistory = 1024

// GamePhaseMax is the sum of game-phase points (GamePhaseValue) for the
// starting material of both sides. Used to taper the positional tables
// between midgame and endgame.
const GamePhaseMax = 24

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var initialized bool

// Init precomputes all lookup tables used by the types package (bitboards,
// zobrist keys, piece-square tables). It is idempotent and must be called
// once before any Position is created.
func Init() {
	if initialized {
		return
	}
	initBb()
	initZobrist()
	initPosValues()
	initialized = true
}
