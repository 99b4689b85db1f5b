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

package types

// PieceType is the kind of a piece, independent of color: King, Pawn,
// Knight, Bishop, Rook or Queen, plus the sentinel PtNone.
type PieceType int8

// Constants for each piece type
const (
	PtNone   PieceType = 0
	King     PieceType = 1
	Pawn     PieceType = 2
	Knight   PieceType = 3
	Bishop   PieceType = 4
	Rook     PieceType = 5
	Queen    PieceType = 6
	PtLength int       = 7
)

// IsValid checks if pt is a valid, non-sentinel piece type
func (pt PieceType) IsValid() bool {
	return pt > 0 && pt < 7
}

var pieceTypeToString = [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns the full name of the piece type (e.g. "Knight")
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "-KPNBRQ"

// Char returns a single upper case character representing the piece type
// (e.g. "N" for Knight). PtNone is "-".
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// gamePhaseValue gives each piece type's contribution to the game phase used
// to taper positional evaluation between midgame and endgame.
var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns the game phase point value for the piece type.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// pieceTypeValue gives the static material value in centipawns of each
// piece type. King is given a large but finite value so that king safety
// terms and SEE computations stay well defined.
var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the static material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}
