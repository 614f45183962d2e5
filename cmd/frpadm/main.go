package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	frpadmin "github.com/maddsua/frp-admin"
)

var (
	flagConfig   string
	flagAddr     string
	flagUser     string
	flagPassword string
	flagDebug    bool

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "frpadm",
	Short:   "frpadm controls frpc and frps processes over their admin API",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

		if flagDebug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		return nil
	},
	SilenceUsage: true,
}

func newClient() (*frpadmin.Client, error) {

	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}

	addr := GetConfigOpt(flagAddr, "addr", cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("admin address not provided (use --addr, FRPADM_ADDR or a config file)")
	}

	user := GetConfigOpt(flagUser, "user", cfg.User)
	password := GetConfigOpt(flagPassword, "password", cfg.Password)

	slog.Debug("Connecting to admin api",
		slog.String("addr", addr),
		slog.String("user", user))

	return frpadmin.NewClient(addr, user, password)
}

func main() {

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file location")
	rootCmd.PersistentFlags().StringVarP(&flagAddr, "addr", "a", "", "admin api address (http://host:port)")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "admin api user")
	rootCmd.PersistentFlags().StringVarP(&flagPassword, "password", "p", "", "admin api password")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		statusCmd,
		configCmd,
		reloadCmd,
		stopCmd,
		serverInfoCmd,
		proxiesCmd,
		trafficCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
