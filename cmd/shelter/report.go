package main

import (
	"encoding/json"
	"fmt"
	"time"

	"cat-shelter-admin/internal/adapters/storage/sqlstore"
	"cat-shelter-admin/internal/config"
	"cat-shelter-admin/internal/domain/reports"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Informes del refugio",
	}
	cmd.AddCommand(newActivityReportCmd())
	return cmd
}

func newActivityReportCmd() *cobra.Command {
	now := time.Now()
	var year, month, otherSpecies int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Imprime el informe mensual de actividad en JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// memory arranca vacío en cada proceso: no hay nada que informar.
			if cfg.DBDriver == config.DriverMemory {
				return fmt.Errorf("report activity: DB_DRIVER=%s has no persisted data, use sqlite or postgres", cfg.DBDriver)
			}
			db, dialect, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := sqlstore.New(db, dialect).Animals()
			st, err := reports.NewService(repo).ActivityReport(cmd.Context(), year, month, otherSpecies)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(reports.ToActivityResponse(st))
		},
	}

	cmd.Flags().IntVar(&year, "year", now.Year(), "año del informe")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "mes (1-12)")
	cmd.Flags().IntVar(&otherSpecies, "other-species", 0, "residentes no felinos a sumar en los totales")
	return cmd
}
