package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput ввод закончился раньше, чем пользователь ответил
var ErrNoInput = errors.New("no input")

// Stdio IO поверх файла ввода и writer вывода.
// Пароль читается без эха, если ввод это терминал.
type Stdio struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

var _ IO = (*Stdio)(nil)

// NewStdio creates IO over os.Stdin and os.Stdout
func NewStdio() *Stdio {
	return NewFileIO(os.Stdin, os.Stdout)
}

// NewFileIO creates IO over the given input file and output
func NewFileIO(in *os.File, out io.Writer) *Stdio {
	return &Stdio{in: in, reader: bufio.NewReader(in), out: out}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput prints the prompt and reads one trimmed line.
// The last line may come without a trailing newline.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	return s.readLine()
}

// ReadPassword reads a line without echo when the input is a terminal
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)

	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return s.readLine()
	}

	pwBytes, err := term.ReadPassword(fd)
	s.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pwBytes), nil
}

func (s *Stdio) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
