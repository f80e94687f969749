package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/platform/tui"
	"github.com/vovakirdan/paddleball/internal/sim"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the paddleball SSH server",
	Long: `Start an SSH server that serves the variant picker.

Each connection gets its own menu and its own arena; sessions share nothing.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.paddleball/host_key

Examples:
  paddleball serve                           # Listen on :23234
  paddleball serve --ssh :2222               # Listen on port 2222
  paddleball serve --host-key ./my_host_key  # Use specific host key

Connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	arena := loadArena()
	if _, err := sim.New(arena); err != nil {
		fatal("%v", err)
	}

	logger, closeLog := newLogger(os.Stderr, "paddleball-ssh")
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Arena:       arena,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		closeLog()
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting paddleball SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeLog()
		fatal("%v", err)
	}
}
