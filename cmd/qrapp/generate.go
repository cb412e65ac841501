package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nryeo/QRCODE-APP01/internal/handlers"
	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/service"
	"github.com/nryeo/QRCODE-APP01/internal/shortener"
)

func newGenerateCmd() *cobra.Command {
	var (
		output string
		style  = model.DefaultStyle()
	)
	cmd := &cobra.Command{
		Use:   "generate <text>",
		Short: "Write a QR code for <text> as a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewQRService(qr.NewEncoder(), shortener.Disabled{}, zap.NewNop(), style)
			data, code, err := svc.Generate(model.EncodeRequest{Payload: args[0], Style: style})
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: version %d, %dx%d modules, %d bytes\n",
				output, code.Version, code.Modules, code.Modules, len(data))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", handlers.DownloadFileName, "output PNG file")
	f.StringVar(&style.FillColor, "fill", style.FillColor, "module color, #rrggbb")
	f.StringVar(&style.BackColor, "back", style.BackColor, "background color, #rrggbb")
	f.IntVar(&style.ModuleSize, "module-size", style.ModuleSize, "pixels per module")
	f.IntVar(&style.BorderWidth, "border", style.BorderWidth, "border width in modules")
	return cmd
}
