package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	easy "github.com/t-tomalak/logrus-easy-formatter"

	"github.com/loxcraft/loxvm/debug"
	"github.com/loxcraft/loxvm/vm"
)

// Exit codes per the driver contract (spec.md §6).
const (
	ExitOK           = 0
	ExitCompileError = 65
	ExitRuntimeError = 70
	ExitUsage        = 64
)

// App builds the `golox` command: no argument drops into a REPL, one
// argument interprets that file, and more than one is a usage error.
func App() *cobra.Command {
	app := &cobra.Command{
		Use:   "golox [script]",
		Short: "Run the golox bytecode interpreter",
		Long: heredoc.Doc(`
			golox compiles and runs source for a small dynamically-typed
			scripting language on a stack-based bytecode VM.

			With no arguments it starts an interactive REPL. With one
			argument it reads and interprets that file.
		`),
		Args: cobra.MaximumNArgs(1),
	}

	app.Flags().SortFlags = true
	defaultVerbosity := "INFO"
	verbosity := app.Flags().StringP("verbosity", "v", defaultVerbosity, "Logging verbosity")
	trace := app.Flags().Bool("trace", false, "Trace bytecode disassembly and the stack on every VM step")

	app.RunE = func(_ *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(*verbosity)
		if err != nil {
			level, _ = logrus.ParseLevel(defaultVerbosity)
		}
		logrus.SetLevel(level)
		logrus.SetFormatter(&easy.Formatter{LogFormat: "//DBG// %msg%\n"})
		debug.DEBUG = *trace
		if *trace && level < logrus.DebugLevel {
			logrus.SetLevel(logrus.DebugLevel)
		}

		code := run(args)
		if code != ExitOK {
			os.Exit(code)
		}
		return nil
	}
	return app
}

func run(args []string) int {
	vm_ := vm.NewVM()
	if len(args) == 0 {
		return runREPL(vm_)
	}
	return runFile(vm_, args[0])
}

func runFile(vm_ *vm.VM, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: %v\n", err)
		return ExitUsage
	}

	_, result, err := vm_.Interpret(string(src))
	switch result {
	case vm.CompileError:
		fmt.Fprintln(os.Stderr, err)
		return ExitCompileError
	case vm.RuntimeErr:
		fmt.Fprintln(os.Stderr, err)
		return ExitRuntimeError
	default:
		return ExitOK
	}
}

func runREPL(vm_ *vm.VM) int {
	rl, err := readline.New(">> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: %v\n", err)
		return ExitUsage
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return ExitOK
		}
		if line == "" {
			continue
		}
		if _, result, err := vm_.Interpret(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
			_ = result // the REPL reports every error but keeps looping
		}
	}
}
