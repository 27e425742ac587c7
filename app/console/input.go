package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned when the input stream ends while a value is
// still being prompted for.
var ErrInputClosed = errors.New("input closed")

// Prompter reads operator responses line by line from in and writes prompts
// to out. Both streams are injected so tests can script a whole session.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return p.in.Text(), nil
}

// Text reads one raw line. Empty responses are allowed.
func (p *Prompter) Text(prompt string) (string, error) {
	return p.line(prompt)
}

// RequiredText re-prompts until the trimmed response is non-empty.
func (p *Prompter) RequiredText(prompt string) (string, error) {
	for {
		v, err := p.line(prompt)
		if err != nil {
			return "", err
		}
		if v = strings.TrimSpace(v); v == "" {
			fmt.Fprintln(p.out, "This field is required.")
			continue
		}
		return v, nil
	}
}

// PositiveInt re-prompts until the response parses as an integer > 0.
func (p *Prompter) PositiveInt(prompt string) (int, error) {
	for {
		v, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid number. Please try again.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(p.out, "Value must be positive.")
			continue
		}
		return n, nil
	}
}

// PositiveDecimal re-prompts until the response parses as a decimal > 0.
func (p *Prompter) PositiveDecimal(prompt string) (decimal.Decimal, error) {
	for {
		v, err := p.line(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid number. Please try again.")
			continue
		}
		if !d.IsPositive() {
			fmt.Fprintln(p.out, "Value must be positive.")
			continue
		}
		return d, nil
	}
}

// NonNegativeDecimal re-prompts until the response parses as a decimal >= 0.
// Discounts come through here, where zero is a valid answer.
func (p *Prompter) NonNegativeDecimal(prompt string) (decimal.Decimal, error) {
	for {
		v, err := p.line(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid number. Please try again.")
			continue
		}
		if d.IsNegative() {
			fmt.Fprintln(p.out, "Value must not be negative.")
			continue
		}
		return d, nil
	}
}
