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

import (
	"fmt"
	"strings"

	"github.com/dkuhlmann/corvid/internal/assert"
)

// Move is a 64bit unsigned int encoding a chess move as a primitive data
// type: from-square, to-square, moving piece kind, captured piece kind (or
// PtNone), promotion piece kind (or PtNone), a bit set of MoveFlag values
// and a 16-bit signed sort value used by the move generator and search.
//
//  BITMAP
//  |--- value (16) ---|flags(5)|promo(3)|capt(3)|moving(3)|--to(6)--|-from(6)-|
type Move uint64

// MoveNone is the empty, invalid move.
const MoveNone Move = 0

// MoveFlag is a bit set of move properties. Several flags can be set at
// once, e.g. Capture|Promotion for a capturing promotion, or
// Capture|EnPassant for an en-passant capture.
type MoveFlag uint8

// Move flag bits.
const (
	Capture        MoveFlag = 1 << 0
	EnPassant      MoveFlag = 1 << 1
	Castle         MoveFlag = 1 << 2
	DoublePawnPush MoveFlag = 1 << 3
	Promotion      MoveFlag = 1 << 4
)

const (
	fromShift     uint   = 6
	movingShift   uint   = 12
	capturedShift uint   = 15
	promoShift    uint   = 18
	flagShift     uint   = 21
	valueShift    uint   = 26
	pieceTypeBits Move   = 0x7
	flagBits      MoveFlag = 0x1F

	squareMask Move = 0x3F
	toMask          = squareMask
	fromMask        = squareMask << fromShift
	moveMask   Move = (1 << valueShift) - 1 // everything below the sort value
	valueMask  Move = 0xFFFF << valueShift
)

// CreateMove returns an encoded Move instance.
func CreateMove(from, to Square, moving, captured, promo PieceType, flags MoveFlag) Move {
	return Move(from) |
		Move(to)<<fromShift |
		Move(moving)<<movingShift |
		Move(captured)<<capturedShift |
		Move(promo)<<promoShift |
		Move(flags)<<flagShift
}

// CreateMoveValue returns an encoded Move instance including a sort value.
func CreateMoveValue(from, to Square, moving, captured, promo PieceType, flags MoveFlag, value Value) Move {
	m := CreateMove(from, to, moving, captured, promo, flags)
	m.SetValue(value)
	return m
}

// From returns the from-square of the move.
func (m Move) From() Square {
	return Square(m & squareMask)
}

// To returns the to-square of the move.
func (m Move) To() Square {
	return Square((m >> fromShift) & squareMask)
}

// MovingPiece returns the piece kind making the move.
func (m Move) MovingPiece() PieceType {
	return PieceType((m >> movingShift) & pieceTypeBits)
}

// CapturedPiece returns the captured piece kind, or PtNone if the move is
// not a capture.
func (m Move) CapturedPiece() PieceType {
	return PieceType((m >> capturedShift) & pieceTypeBits)
}

// PromotionType returns the promotion piece kind, or PtNone if the move is
// not a promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m >> promoShift) & pieceTypeBits)
}

// Flags returns the move's flag set.
func (m Move) Flags() MoveFlag {
	return MoveFlag((m >> flagShift) & Move(flagBits))
}

// Has reports whether the move carries the given flag (or combination of
// flags, all of which must be set).
func (m Move) Has(f MoveFlag) bool {
	return m.Flags()&f == f
}

// IsCapture reports whether the move captures a piece (including en-passant).
func (m Move) IsCapture() bool {
	return m.Has(Capture)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Has(Promotion)
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Has(EnPassant)
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Has(Castle)
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Has(DoublePawnPush)
}

// MoveOf returns the move without any sort value attached - useful as a map
// key or for comparing moves for equality regardless of how they were scored.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the sort value attached to the move. The 16 value bits
// are reinterpreted directly as a signed Value, so the full Value range
// round-trips without any offset arithmetic.
func (m Move) ValueOf() Value {
	return Value(uint16((m & valueMask) >> valueShift))
}

// SetValue encodes the given sort value into the move. Has no effect on
// MoveNone.
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "invalid move sort value: %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	*m = *m&moveMask | Move(uint16(v))<<valueShift
	return *m
}

// IsValid checks if the move has valid squares, piece kinds and flags.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.From() != m.To() &&
		m.MovingPiece().IsValid()
}

// String returns a verbose, human readable representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  piece:%1s  capt:%1s  prom:%1s  flags:%s  value:%-6d }",
		m.StringUci(), m.MovingPiece().Char(), m.CapturedPiece().Char(), m.PromotionType().Char(),
		m.Flags().String(), m.ValueOf())
}

// StringUci returns the UCI protocol representation of the move
// (e.g. "e2e4", "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}

// String returns a short label for the flag set, e.g. "Capture|Promotion".
func (f MoveFlag) String() string {
	if f == 0 {
		return "Normal"
	}
	var parts []string
	if f&Capture != 0 {
		parts = append(parts, "Capture")
	}
	if f&EnPassant != 0 {
		parts = append(parts, "EnPassant")
	}
	if f&Castle != 0 {
		parts = append(parts, "Castle")
	}
	if f&DoublePawnPush != 0 {
		parts = append(parts, "DoublePawnPush")
	}
	if f&Promotion != 0 {
		parts = append(parts, "Promotion")
	}
	return strings.Join(parts, "|")
}
