package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldplan/tourplan/app"
	"github.com/fieldplan/tourplan/config"
	"github.com/fieldplan/tourplan/internal/tabular"
)

var (
	customersPath string
	ordersPath    string
	outDir        string
	startDate     string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a visit schedule from customers and orders",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&customersPath, "customers", "customers.csv", "customer master data CSV")
	planCmd.Flags().StringVar(&ordersPath, "orders", "orders.csv", "confirmed orders CSV")
	planCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	planCmd.Flags().StringVar(&startDate, "start", "", "first candidate working day (2006-01-02, default today)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	go func() {
		if err := svc.StartMetricsServer(ctx); err != nil {
			svc.Log.Errorf("metrics server: %v", err)
		}
	}()

	customers, err := tabular.ReadCustomers(customersPath)
	if err != nil {
		return err
	}
	orders, err := tabular.ReadOrders(ordersPath)
	if err != nil {
		return err
	}

	var start time.Time
	if startDate != "" {
		start, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return fmt.Errorf("start date: %w", err)
		}
	}

	plan, err := svc.Planner.GeneratePlan(ctx, customers, orders, start)
	if err != nil {
		return err
	}

	if err := tabular.WritePlan(filepath.Join(outDir, "plan.csv"), plan); err != nil {
		return err
	}
	if err := tabular.WriteUnmatched(filepath.Join(outDir, "unmatched.csv"), plan.Unmatched); err != nil {
		return err
	}
	if err := tabular.WriteRenewals(filepath.Join(outDir, "renewals.csv"), plan.Renewals); err != nil {
		return err
	}

	fmt.Printf("plan %s: %d visits, %d unmatched, %d weeks, %.0f km\n",
		plan.RunID, plan.Stats.PlannedVisits, plan.Stats.UnmatchedOrders,
		plan.Stats.WeeksNeeded, plan.Stats.TotalKm)
	for name, st := range plan.Stats.PerInspector {
		fmt.Printf("  %-12s %3d visits  %4d days  %6.0f km  %6.1f h\n",
			name, st.Visits, st.Days, st.Km, st.WorkHours)
	}
	return nil
}
