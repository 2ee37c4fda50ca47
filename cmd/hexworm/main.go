// Command hexworm generates, solves and plays hex worm levels.
//
// Usage:
//
//	hexworm [-config file] [-seed n] gen
//	hexworm [-config file] [-seed n] solve [-level n | -map file]
//	hexworm [-config file] levels
//	hexworm [-config file] [-seed n] play
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("hexworm: usage: hexworm [-config file] [-seed n] gen|solve|levels|play")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses the global flags and dispatches to a subcommand.
func run(args []string, in io.Reader, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("hexworm", flag.ContinueOnError)
	fs.SetOutput(errOut)
	cfgPath := fs.String("config", "", "YAML configuration file")
	seed := fs.Int64("seed", 0, "level seed (0: from config, else time based)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	env, err := newEnv(*cfgPath, *seed, errOut)
	if err != nil {
		return err
	}

	rest := fs.Args()[1:]
	switch fs.Arg(0) {
	case "gen":
		return env.gen(out)
	case "solve":
		return env.solve(rest, out)
	case "levels":
		return env.levels(out)
	case "play":
		return env.play(in, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, fs.Arg(0))
	}
}
