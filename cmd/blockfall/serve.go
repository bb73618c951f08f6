package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blockfall/blockfall/internal/platform/tui"
)

var (
	flagServeAddr    string
	flagServeHostKey string
	flagServeIdle    time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an SSH server so others can play remotely",
	Long: `Start an SSH server that serves blockfall over the network.

Anyone can connect and play:
  ssh -p 23234 localhost

Results are saved to a shared database on the server.`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagServeHostKey, "host-key", "", "Path to SSH host key (generated if missing)")
	serveCmd.Flags().DurationVar(&flagServeIdle, "idle-timeout", 30*time.Minute, "Close idle connections after this duration")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagServeAddr
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagServeIdle
	if flagServeHostKey != "" {
		cfg.HostKeyPath = flagServeHostKey
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
