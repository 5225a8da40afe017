package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotX12/ipcalc/internal/logger"
	"github.com/dotX12/ipcalc/internal/service"
)

var (
	logLevel   string
	jsonOutput bool
	hostLimit  int
	pingCount  int
	scanPorts  []int
	version    = "dev" // set at build time via -ldflags
)

func main() {
	log := logger.New()
	logger.SetGlobalLogger(log)

	rootCmd := &cobra.Command{
		Use:     "ipcalc",
		Short:   "IPv4 address and subnet calculator",
		Long:    `Computes network properties for an address and prefix, partitions networks into subnets, enumerates host ranges and runs simulated ping/port-scan probes.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				log = logger.NewWithLevel(logLevel)
				logger.SetGlobalLogger(log)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	infoCmd := &cobra.Command{
		Use:   "info <address> <prefix|mask>",
		Short: "Show network properties for an address and prefix",
		Long:  `Derives network address, broadcast, host range, masks and binary renderings. The prefix may be given as "24", "/24", a dotted mask or a wildcard mask.`,
		Args:  cobra.ExactArgs(2),
		Run:   runInfo,
	}

	splitCmd := &cobra.Command{
		Use:   "split <address> <prefix|mask> <count>",
		Short: "Partition a network into equally sized subnets",
		Args:  cobra.ExactArgs(3),
		Run:   runSplit,
	}

	hostsCmd := &cobra.Command{
		Use:   "hosts <address> <prefix|mask>",
		Short: "List usable host addresses of a network",
		Args:  cobra.ExactArgs(2),
		Run:   runHosts,
	}
	hostsCmd.Flags().IntVar(&hostLimit, "limit", 0, "Maximum hosts to list (default 256)")

	pingCmd := &cobra.Command{
		Use:   "ping <address>",
		Short: "Run simulated echo probes against an address",
		Long:  `Emits randomized reply/timeout outcomes in ping-like output. No packets are sent.`,
		Args:  cobra.ExactArgs(1),
		Run:   runPing,
	}
	pingCmd.Flags().IntVarP(&pingCount, "count", "c", 4, "Number of probes")

	scanCmd := &cobra.Command{
		Use:   "scan <address>",
		Short: "Run a simulated TCP port scan against an address",
		Long:  `Emits randomized open/closed outcomes per port. No connections are made.`,
		Args:  cobra.ExactArgs(1),
		Run:   runScan,
	}
	scanCmd.Flags().IntSliceVarP(&scanPorts, "ports", "p",
		[]int{21, 22, 23, 25, 53, 80, 110, 143, 443, 445, 3306, 3389, 5432, 8080},
		"Ports to probe")

	rootCmd.AddCommand(infoCmd, splitCmd, hostsCmd, pingCmd, scanCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInfo(cmd *cobra.Command, args []string) {
	log := logger.Global()
	calc := service.NewCalculator(log.Logger)

	info, err := calc.Info(args[0], args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to compute network info")
	}

	printResult(info, func() string { return service.FormatNetworkInfo(info) })
}

func runSplit(cmd *cobra.Command, args []string) {
	log := logger.Global()
	calc := service.NewCalculator(log.Logger)

	count, err := parseCount(args[2])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid subnet count")
	}

	subnets, err := calc.Split(args[0], args[1], count)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate subnets")
	}

	printResult(subnets, func() string { return service.FormatSubnets(subnets) })
}

func runHosts(cmd *cobra.Command, args []string) {
	log := logger.Global()
	calc := service.NewCalculator(log.Logger)

	hosts, err := calc.Hosts(args[0], args[1], hostLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to enumerate hosts")
	}

	printResult(hosts, func() string {
		if len(hosts) == 0 {
			return ""
		}
		return strings.Join(hosts, "\n") + "\n"
	})
}

func runPing(cmd *cobra.Command, args []string) {
	log := logger.Global()
	tools := service.NewNetTools(log.Logger, time.Now().UnixNano())

	results, err := tools.Ping(args[0], pingCount)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run simulated ping")
	}

	printResult(results, func() string { return service.FormatPingResults(results) })
}

func runScan(cmd *cobra.Command, args []string) {
	log := logger.Global()
	tools := service.NewNetTools(log.Logger, time.Now().UnixNano())

	results, err := tools.ScanPorts(args[0], scanPorts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run simulated scan")
	}

	printResult(results, func() string { return service.FormatPortResults(results) })
}

// printResult prints either the JSON encoding or the text rendering of a
// result, depending on the --json flag.
func printResult(v any, text func() string) {
	log := logger.Global()

	if jsonOutput {
		out, err := service.ToJSON(v)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to encode result")
		}
		fmt.Println(out)
		return
	}

	fmt.Print(text())
}

func parseCount(s string) (int, error) {
	count, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return count, nil
}
