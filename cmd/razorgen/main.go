package main

import (
	"os"

	"github.com/ekhoroshev/razorgen/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.GenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
