package main

import (
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promisedemo",
	Short: "Hand one value from a producer goroutine to a consumer",
	Run:   demoCmdHandler,
}

func init() {
	flags := rootCmd.Flags()
	flags.DurationP("delay", "d", 2*time.Second, "producer work time before settling")
	flags.Bool("fail", false, "producer reports an error instead of a value")
	flags.Bool("abandon", false, "producer exits without settling")
}

func demoCmdHandler(cmd *cobra.Command, args []string) {
	var conf DemoConf
	flags := cmd.Flags()
	conf.delay, _ = flags.GetDuration("delay")
	conf.fail, _ = flags.GetBool("fail")
	conf.abandon, _ = flags.GetBool("abandon")
	RunDemo(conf)
}
