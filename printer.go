package fetchurl

import (
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/fx"
)

// Module is what code in this package and its subpackages passes to Prepend.
const Module = "FetchURL"

// Prepend creates the standard format for information output that uber/fx uses.
// It returns a string of the form "[module] template".
func Prepend(module, template string) string {
	return "[" + module + "] " + template
}

// PrinterFunc is a function type that implements fx.Printer.  This is useful
// for passing functions as printers, such as a zap SugaredLogger's Infof.
type PrinterFunc func(string, ...interface{})

// Printf implements fx.Printer.  Note that this method does not append
// a newline to the output.
func (pf PrinterFunc) Printf(template string, args ...interface{}) {
	pf(template, args...)
}

// PrinterWriter creates an fx.Printer that sends all output to the specified
// Writer.  Each write has a newline appended.
//
// Any error from Write() results in a panic.
func PrinterWriter(w io.Writer) fx.Printer {
	return PrinterFunc(func(template string, args ...interface{}) {
		_, err := fmt.Fprintf(w, template+"\n", args...)
		if err != nil {
			panic(err)
		}
	})
}

// defaultPrinter follows the same pattern as in the go.uber.org/fx/internal/fxlog package
var defaultPrinter fx.Printer = log.New(os.Stderr, "", log.LstdFlags)

// DefaultPrinter returns the fx.Printer used when no printer is supplied.
// This outputs to os.Stderr, in keeping with uber/fx's behavior.
func DefaultPrinter() fx.Printer {
	return defaultPrinter
}

// NewModulePrinter decorates a printer so that every template is prefixed
// with Prepend(module, ...).  If next is nil, DefaultPrinter() is decorated.
func NewModulePrinter(module string, next fx.Printer) fx.Printer {
	if next == nil {
		next = DefaultPrinter()
	}

	return PrinterFunc(func(template string, args ...interface{}) {
		next.Printf(Prepend(module, template), args...)
	})
}

// Logger makes the given printer available as a global, unnamed fx.Printer
// component.  Code in this module's packages will use it for informational output.
func Logger(p fx.Printer) fx.Option {
	return fx.Provide(
		// NOTE: Cannot use fx.Supply here, as that produces a component
		// of the most-derived type, e.g. PrinterFunc.
		func() fx.Printer {
			return p
		},
	)
}

// t is implemented by both *testing.T and *testing.B
type t interface {
	Name() string
	Logf(string, ...interface{})
}

// TestPrinter returns an fx.Printer that writes to a test's log.
func TestPrinter(t t) fx.Printer {
	return PrinterFunc(func(template string, args ...interface{}) {
		t.Logf(t.Name()+" "+template, args...)
	})
}
