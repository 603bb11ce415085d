package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/pkg/exception"
	"github.com/yanun0323/decimal"
	"github.com/yanun0323/errors"
	"golang.org/x/term"
)

// Parser converts a trimmed, non-empty line into a value.
type Parser[T any] func(string) (T, error)

// Prompter reads operator input line by line and writes prompts and
// diagnostics to out. It never touches the network.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}

	if f, ok := in.(*os.File); ok {
		p.fd = int(f.Fd())
		p.tty = term.IsTerminal(p.fd)
	}

	return p
}

// Line prints label and returns the next trimmed line. It returns io.EOF once
// the input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) != 0 {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			fmt.Fprintln(p.out)
			return "", io.EOF
		}
		return "", errors.Wrap(err, "read line")
	}

	return strings.TrimSpace(line), nil
}

// Secret reads a credential without echo when attached to a terminal.
// Empty input is returned as is, the caller decides whether it is fatal.
func (p *Prompter) Secret(label string) (string, error) {
	if !p.tty {
		return p.Line(label)
	}

	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", errors.Wrap(err, "read secret")
	}

	return strings.TrimSpace(string(b)), nil
}

// Value asks for label until parse succeeds and, when allowed is given, the
// value matches one of allowed case-insensitively. String values are returned
// upper-cased. The loop ends only on a valid value or an input error.
func Value[T any](p *Prompter, label string, parse Parser[T], allowed ...string) (T, error) {
	for {
		var zero T

		line, err := p.Line(label)
		if err != nil {
			return zero, err
		}

		v, err := check(line, parse, allowed)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: %s\n", err)
			continue
		}

		return v, nil
	}
}

func check[T any](line string, parse Parser[T], allowed []string) (T, error) {
	var zero T
	if len(line) == 0 {
		return zero, exception.ErrInputEmpty
	}

	v, err := parse(line)
	if err != nil {
		return zero, err
	}

	if s, ok := any(v).(string); ok {
		v = any(strings.ToUpper(s)).(T)
	}

	if len(allowed) == 0 {
		return v, nil
	}

	key := strings.ToUpper(fmt.Sprint(v))
	for _, a := range allowed {
		if strings.ToUpper(a) == key {
			return v, nil
		}
	}

	return zero, fmt.Errorf("%w %v", exception.ErrInputNotAllowed, allowed)
}

// String is the identity parser.
func String(s string) (string, error) {
	return s, nil
}

// maxDecimalLen bounds the text of a quantity or price. Exchange precision
// never comes close.
const maxDecimalLen = 32

// Decimal accepts plain decimal notation only. Exponents are rejected.
func Decimal(s string) (decimal.Decimal, error) {
	if len(s) > maxDecimalLen {
		return decimal.Zero, fmt.Errorf("%w: at most %d characters", exception.ErrInputTooLong, maxDecimalLen)
	}

	if !strings.ContainsAny(s, "0123456789") {
		return decimal.Zero, fmt.Errorf("%w: %q", exception.ErrInputNotNumber, s)
	}

	d, err := decimal.New(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", exception.ErrInputNotNumber, s)
	}
	return d, nil
}

func PositiveDecimal(s string) (decimal.Decimal, error) {
	d, err := Decimal(s)
	if err != nil {
		return d, err
	}

	if !d.IsPositive() {
		return decimal.Zero, exception.ErrInputNotPositive
	}

	return d, nil
}

// Side asks for BUY or SELL.
func Side(p *Prompter, label string) (enum.OrderSide, error) {
	s, err := Value(p, label, String, enum.OrderSideNames()...)
	if err != nil {
		return 0, err
	}

	side, _ := enum.ParseOrderSide(s)
	return side, nil
}

// Kind asks for MARKET, LIMIT or STOP_LIMIT.
func Kind(p *Prompter, label string) (enum.OrderKind, error) {
	s, err := Value(p, label, String, enum.OrderKindNames()...)
	if err != nil {
		return 0, err
	}

	kind, _ := enum.ParseOrderKind(s)
	return kind, nil
}
