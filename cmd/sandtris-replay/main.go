// Command sandtris-replay runs a command script against a board and prints
// the resulting grid in layout format.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"sandtris/internal/app"
	"sandtris/internal/input"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	script := flag.String("script", "", "commands to run, e.g. \"a l*3 u r\"")
	scriptFile := flag.String("script-file", "", "read commands from this file")
	each := flag.Bool("each", false, "print the grid after every command")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	text := *script
	if *scriptFile != "" {
		data, err := os.ReadFile(*scriptFile)
		if err != nil {
			logger.Error("read script", "err", err)
			os.Exit(1)
		}
		text = string(data)
	}
	cmds, err := input.ParseScript(text)
	if err != nil {
		logger.Error("parse script", "err", err)
		os.Exit(2)
	}

	b, err := app.NewBoard(cfg)
	if err != nil {
		logger.Error("build board", "err", err)
		os.Exit(1)
	}

	if *each {
		for i, c := range cmds {
			input.Apply(b, c)
			fmt.Printf("# %d %s\n%s\n", i+1, c, b.Cells())
		}
	} else {
		input.Run(b, cmds)
		fmt.Print(b.Cells())
	}
	st := b.Stats()
	fmt.Fprintln(os.Stderr, strings.Join([]string{
		fmt.Sprintf("commands=%d", len(cmds)),
		fmt.Sprintf("ticks=%d", st.Ticks),
		fmt.Sprintf("spawns=%d", st.Spawns),
		fmt.Sprintf("landed=%d", st.Dismantles),
		fmt.Sprintf("state=%s", b.State()),
	}, " "))
}
