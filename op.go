package hashtrace

import (
	"fmt"
	"strconv"
)

type (
	// Kind tags an [Op] as an insert, lookup, or removal.
	Kind uint8
	// Op is a single record of an operation trace.
	Op struct {
		Kind Kind
		Key  int
	}
)

const (
	// Insert reports a key that was not live and now is.
	Insert Kind = iota + 1
	// Lookup reports a live key whose count was below the cap.
	Lookup
	// Remove reports a live key that reached the cap and is no longer live.
	Remove
)

// Symbol returns the line prefix for k: '+', '?', or '-'.
// Invalid kinds return 0.
func (k Kind) Symbol() byte {
	switch k {
	case Insert:
		return '+'
	case Lookup:
		return '?'
	case Remove:
		return '-'
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Lookup:
		return "lookup"
	case Remove:
		return "remove"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func kindOf(symbol byte) (Kind, bool) {
	switch symbol {
	case '+':
		return Insert, true
	case '?':
		return Lookup, true
	case '-':
		return Remove, true
	default:
		return 0, false
	}
}

// String returns the trace line of op, without a line terminator.
func (op Op) String() string {
	text, err := op.AppendText(nil)
	if err != nil {
		return fmt.Sprintf("%%!(%v)", err)
	}
	return string(text)
}

// AppendText appends the trace line of op to b.
// The key is written in decimal with no leading zeros.
func (op Op) AppendText(b []byte) ([]byte, error) {
	symbol := op.Kind.Symbol()
	if symbol == 0 {
		return b, fmt.Errorf("%w: unknown kind %d", ErrInvalidOp, op.Kind)
	}
	b = append(b, symbol)
	return strconv.AppendInt(b, int64(op.Key), 10), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (op Op) MarshalText() ([]byte, error) {
	return op.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (op *Op) UnmarshalText(text []byte) error {
	parsed, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// ParseOp parses a single trace line, as produced by [Op.String].
// The line must not contain a terminator.
func ParseOp(line string) (Op, error) {
	if len(line) < 2 {
		return Op{}, fmt.Errorf("%w: %q is too short", ErrInvalidOp, line)
	}
	kind, ok := kindOf(line[0])
	if !ok {
		return Op{}, fmt.Errorf("%w: %q has unknown prefix %q",
			ErrInvalidOp, line, line[0])
	}
	digits := line[1:]
	if digits[0] < '0' || digits[0] > '9' ||
		(digits[0] == '0' && len(digits) > 1) {
		return Op{}, fmt.Errorf("%w: %q is not a canonical decimal key",
			ErrInvalidOp, line)
	}
	key, err := strconv.Atoi(digits)
	if err != nil {
		return Op{}, fmt.Errorf("%w: %q: %w", ErrInvalidOp, line, err)
	}
	return Op{Kind: kind, Key: key}, nil
}
