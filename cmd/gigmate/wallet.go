package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/output"
	"github.com/danialhaz/gigmate/internal/types"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show your points and cash balance",
	RunE:  runWallet,
}

var walletHistoryLimit int

func init() {
	walletCmd.Flags().IntVar(&walletHistoryLimit, "history", 10, "Number of recent point transactions to show (0 to hide)")

	rootCmd.AddCommand(walletCmd)
}

func runWallet(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	ctx := context.Background()

	balance, err := client.WalletBalance(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch wallet balance: %w", err)
	}

	var history []types.PointTransaction
	if walletHistoryLimit > 0 {
		history, err = client.PointHistory(ctx, walletHistoryLimit)
		if err != nil {
			return fmt.Errorf("failed to fetch point history: %w", err)
		}
	}

	output.RenderWallet(os.Stdout, printer, balance, history)
	return nil
}
