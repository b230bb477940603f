// Command donatectl drives the Helping Hands API from the command line. The
// session token is kept in the configured durable store between runs.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/internal/config"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/internal/logger"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/tokenstore"
)

var (
	apiURL      string
	environment string
	debug       bool
	timeout     time.Duration
)

// errNotOK marks a command whose envelope was printed but did not succeed.
var errNotOK = errors.New("request did not succeed")

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errNotOK) {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "donatectl",
		Short:         "Command line client for the Helping Hands donation API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = logger.NewConsole(os.Stderr, debug)
			log.Debug().Msg("debug logging enabled")
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (default $DONATE_API_URL)")
	rootCmd.PersistentFlags().StringVar(&environment, "env", "", "runtime environment: development, testing, production (default $DONATE_ENVIRONMENT)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "give up waiting after this long (0 waits forever)")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newBlogsCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newDonateCmd())
	rootCmd.AddCommand(newDonationsCmd())
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newContentCmd())
	rootCmd.AddCommand(newTestimonialsCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newPaymentMethodsCmd())

	return rootCmd
}

// loadConfig reads DONATE_* settings and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if environment != "" {
		cfg.Environment = config.Environment(environment)
		if err := cfg.ResolveDefaults(); err != nil {
			return nil, err
		}
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// newClient builds a client from configuration. Development configurations
// get the mock fallback. The returned func releases the token store.
func newClient(cfg *config.Config) (*client.Client, func(), error) {
	store, err := tokenstore.Open(cfg.TokenStore, cfg.TokenPath)
	if err != nil {
		return nil, nil, err
	}
	if p, ok := store.(interface{ Path() string }); ok {
		log.Debug().Str("store", cfg.TokenStore).Str("path", p.Path()).Msg("token store opened")
	}
	closeStore := func() {
		if c, ok := store.(io.Closer); ok {
			_ = c.Close()
		}
	}

	opts := []client.Option{client.WithLogger(log.Logger), client.WithDebugLogging(cfg.Debug)}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(cfg.HTTPTimeout))
	}

	var c *client.Client
	if cfg.IsDevelopment() {
		c, err = client.NewWithDevMode(cfg.APIURL, store, opts...)
	} else {
		c, err = client.New(cfg.APIURL, store, opts...)
	}
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return c, closeStore, nil
}

// withClient loads configuration, builds a client and runs fn under the
// command timeout.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, done, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.Debug().Str("api_url", c.BaseURL()).Bool("dev_mode", c.DevMode()).Msg("client ready")
	return fn(ctx, c)
}

// emit prints env as wire JSON and fails the command when it is not OK.
func emit[T any](cmd *cobra.Command, env client.Envelope[T]) error {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	if !env.OK() {
		if env.Err != nil {
			log.Debug().Err(env.Err).Str("kind", env.Kind.String()).Msg("request did not succeed")
		}
		return errNotOK
	}
	return nil
}
