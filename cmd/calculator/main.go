package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"

	calc "github.com/nikalinov/Smart-Calculator"
)

const usage = `usage: calculator [-Cehv] [-b bits] [-c config] [-g name=value]... [-i file] [-p prompt] [line...]

  -b bits        limit on the estimated size of results of ^ (0 for none)
  -c config      YAML configuration file
  -C             colour error messages even when not writing to a terminal
  -e             print the postfix form of each expression
  -g name=value  variable definition (any number of times)
  -h             print this message
  -i file        input file (default stdin if no lines are given; - for stdin)
  -p prompt      prompt printed before each line
  -v             verbose error messages

Each line argument is processed as one line of input, after any input file.`

func main() {
	log.SetFlags(0)
	opts, optind, err := getopt.Getopts(os.Args, "b:c:Ceg:hi:p:v")
	if err != nil {
		log.Fatal(err)
	}
	cfg := calc.DefaultConfig()
	// Load the configuration file first so that flags override it.
	for _, opt := range opts {
		if opt.Option == 'c' {
			c, err := calc.LoadConfig(opt.Value)
			if err != nil {
				log.Fatal(err)
			}
			cfg = *c
		}
	}
	var inname string
	for _, opt := range opts {
		switch opt.Option {
		case 'b':
			bits, err := strconv.ParseInt(opt.Value, 10, 64)
			if err != nil {
				log.Fatalf("-b parameter not numeric: %q", opt.Value)
			}
			cfg.MaxPowBits = bits
		case 'C':
			cfg.Color = true
		case 'e':
			cfg.Echo = true
		case 'g':
			if _, _, err := calc.ParseBinding(opt.Value); err != nil {
				log.Fatal(err)
			}
			cfg.Vars = append(cfg.Vars, opt.Value)
		case 'h':
			fmt.Println(usage)
			os.Exit(0)
		case 'i':
			inname = opt.Value
		case 'p':
			cfg.Prompt = opt.Value
		case 'v':
			cfg.Verbose = true
		}
	}
	args := os.Args[optind:]

	sess, err := calc.NewSession(calc.WithConfig(cfg))
	if err != nil {
		log.Fatal(err)
	}
	repl := calc.NewREPL(sess, os.Stdout)

	f, err := infile(inname, len(args) == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close()
		if err := repl.Run(f); err != nil {
			log.Fatal(err)
		}
	}
	for _, arg := range args {
		if repl.Done() {
			break
		}
		if err := repl.Line(arg); err != nil {
			log.Fatal(err)
		}
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
