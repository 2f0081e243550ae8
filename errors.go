package chess

import "fmt"

// InvalidMoveError reports a syntactically malformed UCI/SAN/XBoard token.
type InvalidMoveError struct {
	Text string
	Err  error
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("chesscore: invalid move %q: %v", e.Text, e.Err)
}

func (e *InvalidMoveError) Unwrap() error { return e.Err }

func newInvalidMoveError(text string, format string, args ...any) error {
	return &InvalidMoveError{Text: text, Err: fmt.Errorf(format, args...)}
}

// IllegalMoveError reports a syntactically valid move rejected by legality
// in the current position, or a SAN string with no matching legal move.
type IllegalMoveError struct {
	Text string
	Err  error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("chesscore: illegal move %q: %v", e.Text, e.Err)
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }

func newIllegalMoveError(text string, format string, args ...any) error {
	return &IllegalMoveError{Text: text, Err: fmt.Errorf(format, args...)}
}

// AmbiguousMoveError reports a SAN string matching more than one legal move.
type AmbiguousMoveError struct {
	Text    string
	Matches []Move
}

func (e *AmbiguousMoveError) Error() string {
	return fmt.Sprintf("chesscore: ambiguous SAN move %q matches %d legal moves", e.Text, len(e.Matches))
}

// ValueError reports a FEN/EPD structural error: wrong column/row count,
// unknown character, non-numeric clock, an invalid castling-flag set, or
// stray trailing parts.
type ValueError struct {
	Err error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("chesscore: %v", e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

func newValueError(format string, args ...any) error {
	return &ValueError{Err: fmt.Errorf(format, args...)}
}

// IndexError reports a pop/peek call on an empty move stack.
type IndexError struct {
	Op string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("chesscore: %s on an empty move stack", e.Op)
}
