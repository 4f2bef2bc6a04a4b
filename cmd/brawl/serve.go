package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawl/internal/config"
	"github.com/vovakirdan/tui-brawl/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brawl SSH server",
	Long: `Start an SSH server that lets users connect and watch matches.

Each SSH connection gets its own setup form and its own match; nothing is
shared between sessions. Finished matches are logged with their winner.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.brawl/host_key

Examples:
  brawl serve                           # Listen on :23234 with auto-generated key
  brawl serve --ssh :2222               # Listen on port 2222
  brawl serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg, "brawl-ssh")

	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	rc := runtimeConfig(cfg)
	if flagSeed == 0 {
		rc.Seed = 0 // each session rolls its own stats
	}

	hostKey := ""
	if cfg.SSH.HostKey != "" {
		hostKey = config.ExpandPath(cfg.SSH.HostKey)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: hostKey,
		IdleTimeout: time.Duration(cfg.SSH.IdleTimeoutMinutes) * time.Minute,
		Runtime:     rc,
		Setups:      configSetups(cfg),
	}, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting brawl SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
