// Command qrapp serves a QR code generator with optional URL shortening,
// and offers the same operations on the command line.
package main

import (
	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qrapp",
		Short:         "QR code generator",
		Long:          "qrapp encodes text or URLs as QR codes and can shorten URLs through a TinyURL-compatible service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newGenerateCmd(),
		newShortenCmd(),
	)
	return root
}
