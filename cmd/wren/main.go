package main

import (
	"os"

	"github.com/wrenlabs/wren/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.ListCmd())
	rootCmd.AddCommand(commands.CheckCmd())
	rootCmd.AddCommand(commands.ConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
