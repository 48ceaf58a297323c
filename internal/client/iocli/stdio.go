package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrInvalidChoice is returned when a line-mode answer matches no option
var ErrInvalidChoice = errors.New("invalid choice")

type Stdio struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewStdio returns IO over the process stdin/stdout. Prompts use huh forms
// when stdin is a terminal and plain lines otherwise.
func NewStdio() IO {
	return &Stdio{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewLineIO returns line-based IO over arbitrary streams
func NewLineIO(in io.Reader, out io.Writer) IO {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) Confirm(prompt string) (bool, error) {
	if s.interactive {
		var ok bool
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&ok).
			Run()
		return ok, err
	}

	answer, err := s.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *Stdio) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrInvalidChoice
	}

	if s.interactive {
		choice := options[0]
		err := huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(&choice).
			Run()
		return choice, err
	}

	s.Println(title)
	for i, opt := range options {
		s.Printf("  %d) %s\n", i+1, opt)
	}
	answer, err := s.ReadInput("> ")
	if err != nil {
		return "", err
	}

	// номер варианта или его название
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	if slices.Contains(options, answer) {
		return answer, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
}
