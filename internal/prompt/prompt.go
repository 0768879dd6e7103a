// Package prompt собирает параметры кредита через последовательность текстовых вопросов.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Choice пункт меню: буква ответа и описание
type Choice struct {
	Key         string
	Description string
	Default     bool
}

func (c Choice) String() string {
	s := fmt.Sprintf("'%s' - %s", c.Key, c.Description)
	if c.Default {
		s += " (default)"
	}
	return s
}

// Prompt вопрос с необязательным списком вариантов
type Prompt struct {
	Text    string
	Choices []Choice
}

// New создает вопрос
func New(text string, choices ...Choice) *Prompt {
	return &Prompt{Text: text, Choices: choices}
}

func (p *Prompt) render() string {
	if len(p.Choices) == 0 {
		return p.Text + ": "
	}
	lines := make([]string, 0, len(p.Choices))
	for _, c := range p.Choices {
		lines = append(lines, c.String())
	}
	return p.Text + "\n" + strings.Join(lines, "\n") + ": \n> "
}

func (p *Prompt) defaultKey() string {
	for _, c := range p.Choices {
		if c.Default {
			return c.Key
		}
	}
	return ""
}

// Session читает ответы из in и печатает вопросы в out
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewReader(in), out: out}
}

// Ask задает вопрос и возвращает ответ в нижнем регистре.
// Пустой ответ выбирает вариант по умолчанию, если он есть.
func (s *Session) Ask(p *Prompt) (string, error) {
	if _, err := io.WriteString(s.out, p.render()); err != nil {
		return "", err
	}

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		if def := p.defaultKey(); def != "" {
			return def, nil
		}
	}
	return answer, nil
}

// AskInt задает вопрос и разбирает целое число; нечисловой ответ дает 0
func (s *Session) AskInt(p *Prompt) (int64, error) {
	answer, err := s.Ask(p)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return 0, nil
	}
	return v, nil
}

// AskFloat задает вопрос и разбирает десятичное число; нечисловой ответ дает 0
func (s *Session) AskFloat(p *Prompt) (float64, error) {
	answer, err := s.Ask(p)
	if err != nil {
		return 0, err
	}
	d, err := decimal.NewFromString(answer)
	if err != nil {
		return 0, nil
	}
	v, _ := d.Float64()
	return v, nil
}
