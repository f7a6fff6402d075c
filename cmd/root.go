package cmd

import (
	"github.com/carousell/ct-go/pkg/logger/log"
	"github.com/spf13/cobra"

	"github.com/namanpunn/logikxmind-uat/internal/app"
	"github.com/namanpunn/logikxmind-uat/internal/kafka"
	"github.com/namanpunn/logikxmind-uat/internal/server"
)

var rootCmd = &cobra.Command{
	Use:           "mentor-api",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			server.StartServer,
			kafka.StartConsumeMessages,
		).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
