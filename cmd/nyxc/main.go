// Command nyxc compiles a source file to bytecode and optionally dumps
// the resulting program to stdout.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/config"
	"github.com/funvibe/nyxc/internal/driver"
	"github.com/funvibe/nyxc/internal/logging"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if handleHelp(args) {
		return 0
	}

	dump, trace := false, false
	cacheDir := ""
	sourcePath := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-dump", "--dump":
			dump = true
		case "-trace", "--trace":
			trace = true
		case "-cache", "--cache":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "nyxc: %s requires a directory argument\n", arg)
				return 2
			}
			i++
			cacheDir = args[i]
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "nyxc: unrecognized flag %s\n", arg)
				return 2
			}
			if sourcePath == "" {
				sourcePath = arg
			}
		}
	}

	if sourcePath == "" {
		printUsage()
		return 2
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nyxc: %v\n", err)
		return 1
	}

	cfg, err := config.Load(filepath.Join(filepath.Dir(sourcePath), "nyxc.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "nyxc: %v\n", err)
		return 1
	}
	if dump {
		cfg.Dump = true
	}
	if trace {
		cfg.Trace = true
	}
	if cacheDir != "" {
		cfg.CachePath = cacheDir
	}

	level := "info"
	if cfg.Trace {
		level = "debug"
	}
	log := logging.New(os.Stderr).Level(parseLevel(level))

	prog, err := driver.Compile(source, driver.Options{
		CachePath: cfg.CachePath,
		Logger:    log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "nyxc: %v\n", err)
		return 1
	}

	if cfg.Dump {
		dumpProgram(prog, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	}
	return 0
}

// handleHelp recognizes the -help/--help/help forms at argv[0], matching
// how the teacher's own entry point checks os.Args[1] directly against a
// fixed set of strings rather than going through a flag parser.
func handleHelp(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if args[0] != "-help" && args[0] != "--help" && args[0] != "help" {
		return false
	}
	printUsage()
	return true
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: nyxc [-dump] [-trace] [-cache dir] <source>")
}

func parseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func dumpProgram(prog *bytecode.Program, color bool) {
	listing := bytecode.DisassembleProgram(prog)
	if !color {
		fmt.Print(listing)
		return
	}
	for _, line := range strings.Split(listing, "\n") {
		if strings.HasPrefix(line, "==") {
			fmt.Printf("\x1b[1;36m%s\x1b[0m\n", line)
		} else {
			fmt.Println(line)
		}
	}
}
