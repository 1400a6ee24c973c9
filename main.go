package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/scanzip/internal/cmd"
)

func main() {
	// the gate runs before flags are parsed so nothing else has effect
	if !cmd.Supported(runtime.GOOS) {
		fmt.Println(cmd.UnsupportedMessage)
		return
	}

	if err := fang.Execute(context.Background(), cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
