package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ydb-platform/httpcore/app/client"
	"github.com/ydb-platform/httpcore/app/server"
)

var rootCmd = &cobra.Command{
	Use:   "httpcore",
	Short: "Minimal HTTP/1.1 server serving static resources and capturing request bodies",
}

func init() {
	rootCmd.AddCommand(server.Cmd)
	rootCmd.AddCommand(client.Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
