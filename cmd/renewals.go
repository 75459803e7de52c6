package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldplan/tourplan/app"
	"github.com/fieldplan/tourplan/config"
	"github.com/fieldplan/tourplan/internal/tabular"
)

var renewalsCmd = &cobra.Command{
	Use:   "renewals",
	Short: "List customers whose contract reference date is approaching",
	RunE:  runRenewals,
}

func init() {
	renewalsCmd.Flags().StringVar(&customersPath, "customers", "customers.csv", "customer master data CSV")
	rootCmd.AddCommand(renewalsCmd)
}

func runRenewals(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			svc.Log.Errorf("close: %v", err)
		}
	}()

	customers, err := tabular.ReadCustomers(customersPath)
	if err != nil {
		return err
	}

	renewals := svc.Planner.Renewals(customers, time.Now())
	if len(renewals) == 0 {
		fmt.Println("no renewals in the alert window")
		return nil
	}
	for _, r := range renewals {
		fmt.Printf("%-8s %-30s %s  in %d days\n",
			r.Customer.ID, r.Customer.Name,
			r.Customer.ReferenceDate.Format("2006-01-02"), r.DaysToExpiry)
	}
	return nil
}
