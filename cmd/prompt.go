package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter asks questions on stdout and reads one answer per line on stdin.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewScanner(stdin), out: stdout}
}

// ask prints question and returns the trimmed answer. It returns io.EOF when
// stdin has no more lines.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askRun asks for the payer and the drinks of a new run, and returns them as
// command line arguments.
func (p *prompter) askRun() ([]string, error) {
	payer, err := p.ask("Input <payer name>: ")
	if err != nil {
		return nil, err
	}
	args := []string{payer}

	fmt.Fprintln(p.out, "Input each drink as <consumer name> <drink cost>, type 'Done' when finished.")
	for {
		line, err := p.ask("> ")
		if err == io.EOF || strings.EqualFold(line, "done") {
			return args, nil
		}
		if err != nil {
			return nil, err
		}
		args = append(args, strings.Fields(line)...)
	}
}

// askEdit asks which run to edit and how, and returns them as command line
// arguments for edit.
func (p *prompter) askEdit() (id string, args []string, err error) {
	if id, err = p.ask("Input <run id> of the run to edit: "); err != nil {
		return "", nil, err
	}
	what, err := p.ask("Edit the payer or add/edit a drink? [payer/drink]: ")
	if err != nil {
		return "", nil, err
	}
	switch strings.ToLower(what) {
	case "payer":
		name, err := p.ask("Input <new payer name>: ")
		if err != nil {
			return "", nil, err
		}
		return id, []string{"payer", name}, nil
	case "drink":
		line, err := p.ask("Input <consumer name> <drink cost>: ")
		if err != nil {
			return "", nil, err
		}
		return id, append([]string{"drink"}, strings.Fields(line)...), nil
	}
	return id, []string{what}, nil
}
