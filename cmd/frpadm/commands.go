package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the proxy status table of an frpc process",
	RunE: func(cmd *cobra.Command, args []string) error {

		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.Status(cmd.Context())
		if !result.Success {
			return fmt.Errorf("get status: %s", result.Message)
		}

		wrt := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(wrt, "NAME\tTYPE\tSTATUS\tLOCAL\tREMOTE\tERROR")

		for _, proxies := range result.Data {
			for _, entry := range proxies {
				fmt.Fprintf(wrt, "%s\t%s\t%s\t%s\t%s\t%s\n",
					entry.Name, entry.Type, entry.Status,
					entry.LocalAddr, entry.RemoteAddr, entry.Err)
			}
		}

		return wrt.Flush()
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or replace the frpc configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the running frpc configuration",
	RunE: func(cmd *cobra.Command, args []string) error {

		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.Config(cmd.Context())
		if !result.Success {
			return fmt.Errorf("get config: %s", result.Message)
		}

		fmt.Print(result.Data)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [file]",
	Short: "Upload a new frpc configuration (from a file or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		var data []byte
		var err error

		if len(args) > 0 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}

		if err != nil {
			return fmt.Errorf("read config payload: %v", err)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.SetConfig(cmd.Context(), string(data))
		if !result.Success {
			return fmt.Errorf("update config: %s", result.Message)
		}

		fmt.Println("config updated; run 'frpadm reload' to apply")
		return nil
	},
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Ask frpc to re-read its configuration",
	RunE: func(cmd *cobra.Command, args []string) error {

		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.Reload(cmd.Context())
		if !result.Success {
			return fmt.Errorf("reload: %s", result.Message)
		}

		fmt.Println("reload ok")
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Ask frpc to shut down",
	RunE: func(cmd *cobra.Command, args []string) error {

		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.Stop(cmd.Context())
		if !result.Success {
			return fmt.Errorf("stop: %s", result.Message)
		}

		fmt.Println("stop requested")
		return nil
	},
}

var serverInfoCmd = &cobra.Command{
	Use:   "serverinfo",
	Short: "Show the global stats of an frps process",
	RunE: func(cmd *cobra.Command, args []string) error {

		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.ServerInfo(cmd.Context())
		if !result.Success {
			return fmt.Errorf("get serverinfo: %s", result.Message)
		}

		info := result.Data

		wrt := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(wrt, "version:\t%s\n", info.Version)
		fmt.Fprintf(wrt, "bind port:\t%d\n", info.BindPort)
		fmt.Fprintf(wrt, "clients:\t%d\n", info.ClientCounts)
		fmt.Fprintf(wrt, "connections:\t%d\n", info.CurConns)
		fmt.Fprintf(wrt, "traffic in:\t%d\n", info.TotalTrafficIn)
		fmt.Fprintf(wrt, "traffic out:\t%d\n", info.TotalTrafficOut)

		for proto, count := range info.ProxyTypeCounts {
			fmt.Fprintf(wrt, "proxies (%s):\t%d\n", proto, count)
		}

		return wrt.Flush()
	},
}

var proxiesCmd = &cobra.Command{
	Use:   "proxies <type>",
	Short: "List frps proxies of one type (tcp, udp, http, https, ...)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.ProxiesByType(cmd.Context(), args[0])
		if !result.Success {
			return fmt.Errorf("get proxies: %s", result.Message)
		}

		wrt := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(wrt, "NAME\tSTATUS\tCONNS\tTRAFFIC IN\tTRAFFIC OUT\tCLIENT")

		for _, entry := range result.Data.Proxies {
			fmt.Fprintf(wrt, "%s\t%s\t%d\t%d\t%d\t%s\n",
				entry.Name, entry.Status, entry.CurConns,
				entry.TodayTrafficIn, entry.TodayTrafficOut, entry.ClientVersion)
		}

		return wrt.Flush()
	},
}

var trafficCmd = &cobra.Command{
	Use:   "traffic <proxy>",
	Short: "Show the traffic history of a named proxy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.TrafficByProxy(cmd.Context(), args[0])
		if !result.Success {
			return fmt.Errorf("get traffic: %s", result.Message)
		}

		wrt := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(wrt, "DAY\tIN\tOUT")

		for idx := range result.Data.TrafficIn {

			var out int64
			if idx < len(result.Data.TrafficOut) {
				out = result.Data.TrafficOut[idx]
			}

			fmt.Fprintf(wrt, "-%d\t%d\t%d\n", idx, result.Data.TrafficIn[idx], out)
		}

		return wrt.Flush()
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd)
}
