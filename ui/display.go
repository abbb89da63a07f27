package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/ratel-online/uno/card/color"
)

// Printer writes lines to the terminal, pausing after each one so a
// hot-seat table can follow along.
type Printer struct {
	out   io.Writer
	delay time.Duration
}

func NewPrinter(out io.Writer, delay time.Duration) *Printer {
	if out == nil {
		out = color.Stdout
	}
	return &Printer{out: out, delay: delay}
}

func (p *Printer) Printfln(format string, args ...interface{}) {
	p.Println(fmt.Sprintf(format, args...))
}

func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
	p.pause()
}

// Print writes text that already carries its own line breaks.
func (p *Printer) Print(text string) {
	fmt.Fprint(p.out, text)
	p.pause()
}

func (p *Printer) pause() {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}
