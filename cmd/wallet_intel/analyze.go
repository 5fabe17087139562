package main

import (
	"context"
	"fmt"
	"io"

	"wallet_intel/internal/app/port"
	"wallet_intel/internal/domain/entity"
	"wallet_intel/internal/infrastructure/walletloader"
	"wallet_intel/internal/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type analyzeOptions struct {
	file  string
	quick bool
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	aopts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [address...]",
		Short: "Print wallet reports as JSON",
		Long:  "Print one JSON report per address. Addresses come from the arguments, from --file, or from wallets.file in the configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && aopts.file == "" {
				aopts.file = opts.cfg.Wallets.File
			}
			wallets, err := collectWallets(args, aopts.file, opts)
			if err != nil {
				return err
			}
			app, err := newApplication(opts.cfg, opts.zapLogger)
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), app.reports, wallets, aopts.quick, opts.cfg.Upstream.MaxConcurrentReports)
		},
	}
	cmd.Flags().StringVar(&aopts.file, "file", "", "read addresses from a wallet list, one per line")
	cmd.Flags().BoolVar(&aopts.quick, "quick", false, "print quick reports instead of full reports")
	return cmd
}

func collectWallets(args []string, file string, opts *rootOptions) ([]entity.Wallet, error) {
	var wallets []entity.Wallet
	for _, a := range args {
		if !entity.HasStacksPrefix(a) {
			return nil, fmt.Errorf("invalid Stacks address %q", a)
		}
		wallets = append(wallets, entity.Wallet{Address: a})
	}

	if file != "" {
		walletLog := logger.FromZap(opts.zapLogger, "WalletLoader")
		fromFile, err := walletloader.NewWalletFileLoader(file, walletLog.Info).GetWallets()
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, fromFile...)
	}

	if len(wallets) == 0 {
		return nil, fmt.Errorf("no addresses given: pass them as arguments or use --file")
	}
	return wallets, nil
}

// runAnalyze builds the reports with at most limit in flight and writes them in input order.
func runAnalyze(ctx context.Context, out io.Writer, reports port.ReportService, wallets []entity.Wallet, quick bool, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]any, len(wallets))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, w := range wallets {
		g.Go(func() error {
			if quick {
				results[i] = reports.GenerateQuickReport(gctx, w.Address)
			} else {
				results[i] = reports.GenerateReport(gctx, w.Address)
			}
			return nil
		})
	}
	_ = g.Wait()

	var payload any = results
	if len(results) == 1 {
		payload = results[0]
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return err
	}
	logger.Debug("Reports written", "count", len(results), "quick", quick)
	return nil
}
