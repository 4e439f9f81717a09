// Command gmeshctl is a thin CLI front end over the mesh kernel. Its
// build subcommand builds a primitive, validates it, and writes it as
// OBJ; its validate subcommand builds a primitive and reports any
// validation errors.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sksmith/gmesh/cmd/gmeshctl/internal/shapes"
)

func main() {
	if err := shapes.RootCommand(newLogger()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
