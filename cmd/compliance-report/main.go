package main

import (
	"context"
	"os"

	"github.com/pthm/compliance-report/internal/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
