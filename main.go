// Command planly runs the Planly API server and its maintenance tasks.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mustafagenc/planly/config"
	"github.com/mustafagenc/planly/connection"
	"github.com/mustafagenc/planly/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

var configPath string

var rootCmd = &cobra.Command{
	Use:           "planly",
	Short:         "Planly - work planning and effort tracking",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (default "+config.DefaultFile+" when present)")
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// openStore loads the configuration and connects the configured backend.
func openStore(ctx context.Context) (*config.Config, store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	st, err := connection.OpenStore(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}

// readSecret prompts on a terminal without echo, or reads one line when
// stdin is piped.
func readSecret(in io.Reader, prompt string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(os.Stderr, prompt)
		pass, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(string(pass)), err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
