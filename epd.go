package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halstead/chesscore/internal/corelog"
)

// EPD reading/writing, grounded on the teacher's notation.go tokenizer
// (which scanned SAN tokens out of whitespace-delimited PGN movetext)
// generalized into the opcode/operand scanner spec.md §4.7 specifies: a
// small state machine over {opcode, after-opcode, numeric, string,
// string-escape, san} rather than a regexp, since operand grammar varies
// per opcode and string operands carry backslash escapes regexps can't
// cleanly express.

// EPDOperation is one "opcode operand;" pair. Operands holds the opcode's
// operands as they were written: a single string/number/SAN token, or
// (for pv/am/bm-style opcodes) several SAN tokens.
type EPDOperation struct {
	Opcode   string
	Operands []string
}

// EPD serializes the board's first four FEN fields plus the given
// operations, in the order given.
func (b *Board) EPD(ops ...EPDOperation) string {
	var sb strings.Builder
	sb.WriteString(b.boardFen(false))
	sb.WriteByte(' ')
	sb.WriteString(b.Turn.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castlingFEN(false))
	sb.WriteByte(' ')
	sb.WriteString(b.epSquareFEN(EPLegal))
	for _, op := range ops {
		sb.WriteByte(' ')
		sb.WriteString(op.Opcode)
		for _, operand := range op.Operands {
			sb.WriteByte(' ')
			sb.WriteString(formatEPDOperand(op.Opcode, operand))
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

func formatEPDOperand(opcode, operand string) string {
	switch opcode {
	case "id", "c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9":
		return `"` + escapeEPDString(operand) + `"`
	default:
		return operand
	}
}

func escapeEPDString(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

type epdScanState int

const (
	epdStateOpcode epdScanState = iota
	epdStateAfterOpcode
	epdStateNumeric
	epdStateString
	epdStateStringEscape
	epdStateSAN
)

// SetEPD parses the first four FEN fields plus operations from epd, setting
// the board state and returning the parsed operations keyed by opcode.
func (b *Board) SetEPD(epd string) (map[string][]string, error) {
	parts := strings.SplitN(strings.TrimSpace(epd), " ", 5)
	if len(parts) < 4 {
		return nil, newValueError("expected at least 4 EPD fields")
	}
	fen := strings.Join(parts[0:4], " ") + " 0 1"
	if err := b.SetFEN(fen); err != nil {
		return nil, err
	}

	ops := map[string][]string{}
	if len(parts) < 5 {
		return ops, nil
	}

	rest := parts[4]
	state := epdStateOpcode
	var opcode strings.Builder
	var operand strings.Builder
	var operands []string

	flushOperand := func() {
		if operand.Len() > 0 {
			operands = append(operands, operand.String())
			operand.Reset()
		}
	}
	flushOp := func() {
		if opcode.Len() > 0 {
			flushOperand()
			ops[opcode.String()] = operands
			if opcode.String() == "hmvc" && len(operands) > 0 {
				if v, err := strconv.Atoi(operands[0]); err == nil {
					b.HalfmoveClock = v
				}
			}
			if opcode.String() == "fmvn" && len(operands) > 0 {
				if v, err := strconv.Atoi(operands[0]); err == nil {
					b.FullmoveNumber = v
				}
			}
		}
		opcode.Reset()
		operands = nil
	}

	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch state {
		case epdStateOpcode:
			if c == ' ' {
				state = epdStateAfterOpcode
				continue
			}
			if c == ';' {
				flushOp()
				state = epdStateOpcode
				continue
			}
			opcode.WriteByte(c)
		case epdStateAfterOpcode:
			switch {
			case c == ' ':
				continue
			case c == ';':
				flushOp()
				state = epdStateOpcode
			case c == '"':
				state = epdStateString
			case c == '-' || (c >= '0' && c <= '9'):
				operand.WriteByte(c)
				state = epdStateNumeric
			default:
				operand.WriteByte(c)
				state = epdStateSAN
			}
		case epdStateNumeric:
			switch {
			case c == ' ':
				flushOperand()
				state = epdStateAfterOpcode
			case c == ';':
				flushOperand()
				flushOp()
				state = epdStateOpcode
			default:
				operand.WriteByte(c)
			}
		case epdStateSAN:
			switch {
			case c == ' ':
				flushOperand()
				state = epdStateAfterOpcode
			case c == ';':
				flushOperand()
				flushOp()
				state = epdStateOpcode
			default:
				operand.WriteByte(c)
			}
		case epdStateString:
			switch c {
			case '\\':
				state = epdStateStringEscape
			case '"':
				flushOperand()
				state = epdStateAfterOpcode
			default:
				operand.WriteByte(c)
			}
		case epdStateStringEscape:
			switch c {
			case 'n':
				operand.WriteByte('\n')
			case 'r':
				operand.WriteByte('\r')
			case 't':
				operand.WriteByte('\t')
			case '"':
				operand.WriteByte('"')
			case '\\':
				operand.WriteByte('\\')
			default:
				corelog.Log.Warningf("epd: dropping unknown escape %q", fmt.Sprintf("\\%c", c))
				operand.WriteByte(c)
			}
			state = epdStateString
		}
	}
	if state == epdStateString || state == epdStateStringEscape {
		corelog.Log.Warning("epd: unterminated string operand at end of input")
	}
	flushOp()

	return ops, nil
}
