package ui

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/card/color"
)

type Prompter struct {
	printer *Printer
	scanner *bufio.Scanner
}

func NewPrompter(in io.Reader, printer *Printer) *Prompter {
	return &Prompter{
		printer: printer,
		scanner: bufio.NewScanner(in),
	}
}

// PromptString prints message and reads one line. io.EOF is returned once
// the input is closed.
func (p *Prompter) PromptString(message string) (string, error) {
	if message != "" {
		p.printer.Println(message)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *Prompter) promptInteger(message string) (int, error) {
	for {
		input, err := p.PromptString(message)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(input)
		if err != nil {
			p.printer.Println("The input does not appear to be a number.")
			continue
		}
		return value, nil
	}
}

func (p *Prompter) PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := p.promptInteger(message)
		if err != nil {
			return 0, err
		}
		if input < minimum || input > maximum {
			p.printer.Printfln("Invalid input. Please try again. (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input, nil
	}
}

// PromptPositiveInteger is used for the game setup questions.
func (p *Prompter) PromptPositiveInteger(message string) (int, error) {
	for {
		input, err := p.promptInteger(message)
		if err != nil {
			return 0, err
		}
		if input <= 0 {
			p.printer.Println("Not a valid number")
			continue
		}
		return input, nil
	}
}

func (p *Prompter) PromptColor() (color.Color, error) {
	names := make([]string, 0, len(color.All))
	for _, c := range color.All {
		names = append(names, c.String())
	}
	message := "What should the next color be? " + strings.Join(names, ", ")
	for {
		colorName, err := p.PromptString(message)
		if err != nil {
			return color.Unset, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			p.printer.Println("Invalid color")
			continue
		}
		return chosenColor, nil
	}
}
