package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blockfall/blockfall/internal/core"
	"github.com/blockfall/blockfall/internal/games/tetris"
	"github.com/blockfall/blockfall/internal/platform/tui"
	"github.com/blockfall/blockfall/internal/registry"
	"github.com/blockfall/blockfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive mode selection menu",
	Long:  `Open an interactive menu to pick a mode, view results, and play.`,
	Run:   runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Menu loop: selecting a mode plays it, then returns to menu.
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}
			continue
		}

		if result.GameID == "" {
			continue
		}

		tetris.SetConfigPath("")
		tetris.SetDifficultyPreset("")

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		// Fresh seed for each run started from the menu
		gameCfg := result.Config
		if gameCfg.Seed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, gameCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
	}
}
