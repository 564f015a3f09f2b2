package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "x64dis",
	Short: "x64dis decodes x86/x86-64 machine code",
	Long:  `x64dis decodes a stream of x86/x86-64 machine code bytes into instructions.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {

	rootCmd.AddGroup(&cobra.Group{
		ID:    "arch",
		Title: "Architectures",
	})

	rootCmd.AddCommand(x8664Cmd)
}
