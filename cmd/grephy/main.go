package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	u "github.com/araddon/gou"
	"github.com/kr/pretty"

	automaton "github.com/geange/grephy"
)

const usageMessage = "Usage: grephy [-n NFA-FILE] [-d DFA-FILE] [-loglevel LEVEL] [-backtrack] [-strict] REGEX [FILE]"

// Exit codes follow grep: a line matched, nothing matched, something went wrong.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("grephy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	nfaFile := fs.String("n", "", "write the epsilon-free NFA to this file as a DOT graph")
	dfaFile := fs.String("d", "", "write the minimal DFA to this file as a DOT graph")
	logLevel := fs.String("loglevel", "warn", "log level [debug|info|warn|error]")
	backtrack := fs.Bool("backtrack", false, "match with the NFA instead of the minimal DFA")
	strict := fs.Bool("strict", false, "reject regex literals that never occur in the input")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageMessage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return exitError
	}

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	regex := fs.Arg(0)
	input := "-"
	if fs.NArg() == 2 {
		input = fs.Arg(1)
	}
	u.Infof("regex: %q input: %s", regex, input)

	lines, err := readInput(input, stdin)
	if err != nil {
		u.Errorf("could not read %s: %v", input, err)
		fmt.Fprintf(stderr, "grephy: %v\n", err)
		return exitError
	}

	alphabet := automaton.AlphabetOf(lines)
	u.Debugf("alphabet: %q", string(alphabet))

	var opts []automaton.GrepOption
	if *backtrack {
		opts = append(opts, automaton.WithBacktracking())
	}
	if *strict {
		opts = append(opts, automaton.WithStrictAlphabet())
	}
	g, err := automaton.NewGrep(regex, alphabet, opts...)
	if err != nil {
		u.Errorf("could not compile %q: %v", regex, err)
		fmt.Fprintf(stderr, "grephy: %v\n", err)
		return exitError
	}
	u.Debugf("minimal dfa transitions: %s", pretty.Sprint(g.Minimal().GetTransitions()))

	w := bufio.NewWriter(stdout)
	matched := 0
	for _, line := range lines {
		if g.Match(line) {
			matched++
			fmt.Fprintln(w, line)
		}
	}
	if err := w.Flush(); err != nil {
		u.Errorf("could not write output: %v", err)
		return exitError
	}
	u.Infof("%d of %d lines matched", matched, len(lines))

	if *nfaFile != "" {
		if err := writeDot(*nfaFile, g.EpsilonFree()); err != nil {
			fmt.Fprintf(stderr, "grephy: %v\n", err)
			return exitError
		}
	}
	if *dfaFile != "" {
		if err := writeDot(*dfaFile, g.Minimal()); err != nil {
			fmt.Fprintf(stderr, "grephy: %v\n", err)
			return exitError
		}
	}

	if matched > 0 {
		return exitMatch
	}
	return exitNoMatch
}

func readInput(name string, stdin io.Reader) ([]string, error) {
	if name == "-" {
		return readLines(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

func writeDot(name string, a *automaton.Automaton) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := a.WriteDot(f); err != nil {
		f.Close()
		return err
	}
	u.Infof("wrote %s (%d states)", name, a.GetNumStates())
	return f.Close()
}
