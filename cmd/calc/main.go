// Command calc drives the calculator engine from a terminal. Key labels are
// taken from the arguments, or read from stdin one per line when there are
// none, and the expression is printed after every key.
//
//	calc 5 + 3 + 2 =
//	printf '8\n/\n0\n=\n' | calc -v
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"keypad-calc/internal/calculator"
	"keypad-calc/internal/observability"

	"go.uber.org/zap"
)

func main() {
	verbose := flag.Bool("v", false, "print display and pending operation with every expression")
	keypad := flag.Bool("keypad", false, "print the keypad layout and exit")
	logLevel := flag.String("log-level", "error", "log level for diagnostics on stderr")
	flag.Parse()

	if err := observability.InitLogger(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer observability.SyncLogger()

	if *keypad {
		printKeypad(os.Stdout)
		return
	}

	var err error
	if flag.NArg() > 0 {
		_, err = run(calculator.Initial(), newSliceSource(flag.Args()), os.Stdout, *verbose)
	} else {
		_, err = run(calculator.Initial(), newLineSource(os.Stdin), os.Stdout, *verbose)
	}
	if err != nil {
		observability.Logger.Error("reading keys", zap.Error(err))
		os.Exit(1)
	}
}

func printKeypad(w io.Writer) {
	for _, row := range calculator.Keypad() {
		for i, label := range row {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%-3s", label)
		}
		fmt.Fprintln(w)
	}
}
