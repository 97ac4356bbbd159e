package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/randomtoy/astro-go/internal/adapters/http"
	"github.com/randomtoy/astro-go/internal/app"
	"github.com/randomtoy/astro-go/internal/config"
	"github.com/randomtoy/astro-go/internal/domain"
)

func computeCmd() *cobra.Command {
	var mode, zodiac string

	cmd := &cobra.Command{
		Use:   "compute [YYYY-MM-DD | RFC3339]",
		Short: "Print the reading for a date (today if omitted) as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var raw string
			if len(args) == 1 {
				raw = args[0]
			}
			date, err := domain.ParseDate(raw, time.Now())
			if err != nil {
				return err
			}

			req := app.ReadingRequest{Date: date}
			if mode != "" {
				if req.Mode, err = domain.ParseCalcMode(mode); err != nil {
					return err
				}
			}
			if req.Zodiac, err = domain.ParseZodiac(zodiac); err != nil {
				return err
			}

			svc, err := newService(cfg)
			if err != nil {
				return fmt.Errorf("build service: %w", err)
			}
			reading, err := svc.Reading(context.Background(), req)
			if err != nil {
				return fmt.Errorf("compute reading: %w", err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(httpadapter.ToResponse(reading))
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "calculator mode: drift or seeded (defaults to CALC_MODE)")
	cmd.Flags().StringVar(&zodiac, "zodiac", string(domain.Tropical), "zodiac: tropical or sidereal")
	return cmd
}
