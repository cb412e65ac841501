package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/service"
	"github.com/nryeo/QRCODE-APP01/internal/shortener"
)

func newShortenCmd() *cobra.Command {
	var (
		endpoint string
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "shorten <url>",
		Short: "Print a short link for <url>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := shortener.NewTinyURL(endpoint, timeout, zap.NewNop())
			svc := service.NewQRService(qr.NewEncoder(), client, zap.NewNop(), model.DefaultStyle())
			short, err := svc.Shorten(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), short)
			return nil
		},
	}
	cmd.Flags().StringVarP(&endpoint, "endpoint", "u", shortener.DefaultEndpoint, "TinyURL-compatible shortener endpoint")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}
