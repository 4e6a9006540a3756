package lexer

import (
	"math"
	"strconv"

	"shard/internal/diag"
	"shard/internal/token"
)

// scanNumber recognizes 0x hex literals and decimal literals with an
// optional fraction, exponent, and type suffix. Invalid forms are
// reported but still yield a NumberLit token covering the consumed text.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	invalid := false
	isFloat := false

	// hex: 0x / 0X
	if lx.cursor.Peek() == '0' {
		if b1 := lx.cursor.PeekAt(1); b1 == 'x' || b1 == 'X' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			digitsStart := lx.cursor.Mark()
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			if lx.cursor.Mark() == digitsStart {
				invalid = true // empty hex body
			}
			suffix := lx.scanIntegerSuffix()
			sp := lx.cursor.SpanFrom(start)
			text := lx.text(sp)
			if invalid {
				lx.errLex(diag.LexBadNumber, sp, "Invalid number")
				return token.Token{Kind: token.NumberLit, Span: sp, Text: text}
			}
			digits := lx.file.Slice(lx.cursor.SpanFrom(digitsStart))
			digits = digits[:len(digits)-len(suffix)]
			value, err := strconv.ParseUint(digits, 16, 64)
			if err != nil {
				lx.errLex(diag.LexBadNumber, sp, "Invalid number")
				return token.Token{Kind: token.NumberLit, Span: sp, Text: text}
			}
			return token.Token{Kind: token.NumberLit, Span: sp, Text: text, Value: fitInteger(value, suffix)}
		}
	}

	// integer part
	intStart := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	hadIntPart := lx.cursor.Mark() != intStart

	// fraction: consume '.' only when a digit follows
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		isFloat = true
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else if !hadIntPart {
		// called on a lone '.': no digits on either side
		lx.cursor.Bump()
		invalid = true
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		next2 := lx.cursor.PeekAt(2)
		if isDec(next) || ((next == '+' || next == '-') && isDec(next2)) {
			isFloat = true
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	suffix := lx.scanNumberSuffix()
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if invalid {
		lx.errLex(diag.LexBadNumber, sp, "Invalid number")
		return token.Token{Kind: token.NumberLit, Span: sp, Text: text}
	}

	digits := text[:len(text)-len(suffix)]
	value := decodeNumber(digits, suffix, isFloat)
	if value == nil {
		lx.errLex(diag.LexBadNumber, sp, "Invalid number")
	}
	return token.Token{Kind: token.NumberLit, Span: sp, Text: text, Value: value}
}

// scanNumberSuffix consumes a floating suffix (f F d D m M) or an integer
// suffix and returns its text.
func (lx *Lexer) scanNumberSuffix() string {
	switch lx.cursor.Peek() {
	case 'f', 'F', 'd', 'D', 'm', 'M':
		b := lx.cursor.Bump()
		return string(b)
	default:
		return lx.scanIntegerSuffix()
	}
}

// scanIntegerSuffix consumes u, l, or a ul/lu pair in any case mix.
func (lx *Lexer) scanIntegerSuffix() string {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	if b == 'u' || b == 'U' {
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == 'l' || b2 == 'L' {
			lx.cursor.Bump()
		}
	} else if b == 'l' || b == 'L' {
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == 'u' || b2 == 'U' {
			lx.cursor.Bump()
		}
	}
	return lx.file.Slice(lx.cursor.SpanFrom(start))
}

// decodeNumber produces the literal's constant value, or nil when the
// digits do not parse.
func decodeNumber(digits, suffix string, isFloat bool) any {
	switch suffix {
	case "f", "F":
		v, err := strconv.ParseFloat(digits, 32)
		if err != nil {
			return nil
		}
		return float32(v)
	case "d", "D", "m", "M":
		// decimal constants are carried as float64; the front-end does not
		// model a 128-bit decimal
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil
		}
		return v
	}

	if isFloat {
		if suffix != "" {
			return nil // integer suffix on a floating literal
		}
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil
		}
		return v
	}

	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return nil
	}
	return fitInteger(value, suffix)
}

// fitInteger picks the smallest suitable integer type: i32, then i64,
// then u64. Suffixes force the wider interpretations.
func fitInteger(value uint64, suffix string) any {
	hasU, hasL := false, false
	for i := 0; i < len(suffix); i++ {
		switch suffix[i] {
		case 'u', 'U':
			hasU = true
		case 'l', 'L':
			hasL = true
		}
	}

	switch {
	case hasU:
		return value
	case hasL:
		if value <= math.MaxInt64 {
			return int64(value)
		}
		return value
	case value <= math.MaxInt32:
		return int32(value)
	case value <= math.MaxInt64:
		return int64(value)
	default:
		return value
	}
}
