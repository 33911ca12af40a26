package main

import (
	"encoding/json"
	"io"

	commerce "github.com/goliatone/go-commerce-vtex"
	"github.com/goliatone/go-commerce-vtex/core"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	accountName       string
	secretKey         string
	accessKey         string
	apiRoot           string
	proxyPath         string
	disableCoalescing bool

	lookupEnv func(string) (string, bool)
	extra     []commerce.Option
}

// newRootCommand builds the CLI. Connection settings come from VTEX_*
// environment variables; flags override them.
func newRootCommand(lookupEnv func(string) (string, bool), extra ...commerce.Option) *cobra.Command {
	options := &rootOptions{lookupEnv: lookupEnv, extra: extra}
	cmd := &cobra.Command{
		Use:           "vtexctl",
		Short:         "Query VTEX sellers and clusters through the builder proxy",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&options.accountName, "account", "", "VTEX account name (VTEX_ACCOUNT_NAME)")
	flags.StringVar(&options.secretKey, "app-token", "", "Application secret (VTEX_SECRET_KEY)")
	flags.StringVar(&options.accessKey, "app-key", "", "Application key (VTEX_ACCESS_KEY)")
	flags.StringVar(&options.apiRoot, "api-root", "", "Builder API root the proxy is served from (VTEX_API_ROOT)")
	flags.StringVar(&options.proxyPath, "proxy-path", "", "Proxy path under the API root (VTEX_PROXY_PATH)")
	flags.BoolVar(&options.disableCoalescing, "no-coalesce", false, "Let concurrent lookups of one id each reach the network")

	cmd.AddCommand(newSellerCommand(options))
	cmd.AddCommand(newClusterCommand(options))
	cmd.AddCommand(newRequestCommand(options))
	return cmd
}

func (o *rootOptions) connect() (*commerce.Facade, error) {
	cfg := commerce.Config{
		Credentials: commerce.Credentials{
			AccountName: o.accountName,
			SecretKey:   o.secretKey,
			AccessKey:   o.accessKey,
		},
		APIRoot:   o.apiRoot,
		ProxyPath: o.proxyPath,
		Cache:     core.CacheConfig{DisableCoalescing: o.disableCoalescing},
	}
	opts := []commerce.Option{
		commerce.WithConfigProvider(core.NewCfgxConfigProvider(core.EnvConfigLoader{Lookup: o.lookupEnv})),
	}
	opts = append(opts, o.extra...)
	return commerce.Setup(cfg, opts...)
}

func printJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
