package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"codeforces-client/internal/components/telemetry"
	"codeforces-client/lib/codeforces/api"
	"codeforces-client/lib/codeforces/parser"
	"codeforces-client/lib/codeforces/signer"
	"codeforces-client/lib/configutil"
	"codeforces-client/lib/restyutil"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// Config is read from codeforces.json5 (and codeforces.local.json5) in the cwd or
// any of its parents. Every field is optional, without a key and secret the client
// runs anonymously.
type Config struct {
	ApiKey    string `json:"api_key"`
	ApiSecret string `json:"api_secret"`
	// "get" or "post"
	Method  string `json:"method"`
	BaseUrl string `json:"base_url"`
	PageUrl string `json:"page_url"`
	// pins the nonce, mostly useful for reproducing signatures
	Nonce int `json:"nonce"`
	// when set, every http exchange is written to this directory
	DumpDir string `json:"dump_dir"`
	// seconds between consecutive calls, defaults to 2
	Throttle float64 `json:"throttle"`
}

var (
	debug   bool
	timeout time.Duration

	client *api.Client
	scrape *parser.Parser
)

var rootCmd = &cobra.Command{
	Use:           "cf",
	Short:         "cf is a CLI for the codeforces API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(debug)
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log every request.")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout of a single request.")
}

func readConfig() (Config, error) {
	cfg, err := configutil.ReadRecursively[Config]("codeforces.json5")
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

func setup() error {
	cfg, err := readConfig()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	method, err := api.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	var credentials *signer.Credentials
	if cfg.ApiKey != "" || cfg.ApiSecret != "" {
		credentials = &signer.Credentials{Key: cfg.ApiKey, Secret: cfg.ApiSecret}
	}

	var output restyutil.InstrumentOutput
	if cfg.DumpDir != "" {
		fsOutput, err := restyutil.NewFilesystemOutput(cfg.DumpDir)
		if err != nil {
			return err
		}
		output = fsOutput
	}

	throttle := cfg.Throttle
	if throttle <= 0 {
		throttle = 2
	}
	// codeforces allows one call every two seconds, the api client and the page
	// parser share the budget
	limiter := rate.NewLimiter(rate.Every(time.Duration(throttle*float64(time.Second))), 1)

	tel := telemetry.SlogAPI{}

	client, err = api.NewClient(api.ClientOptions{
		BaseUrl:     cfg.BaseUrl,
		Credentials: credentials,
		Nonce:       cfg.Nonce,
		Method:      method,
		Timeout:     timeout,
		Limiter:     limiter,
		Output:      output,
		TracerName:  "cf",
		Telemetry:   tel,
	})
	if err != nil {
		return err
	}

	scrape, err = parser.New(parser.Options{
		BaseUrl:   cfg.PageUrl,
		Problems:  client,
		Timeout:   timeout,
		Limiter:   limiter,
		Output:    output,
		Telemetry: tel,
	})
	return err
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
