package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/adamhammes/mintalyze/internal/config"
	"github.com/adamhammes/mintalyze/internal/history"
)

// filterOptions holds the flags shared by commands that read an export.
type filterOptions struct {
	configPath       string
	format           string
	after            string
	onOrAfter        string
	before           string
	onOrBefore       string
	includeTransfers bool
}

func (o *filterOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", config.DefaultFileName, "path to mintalyze.yaml")
	cmd.Flags().StringVar(&o.format, "format", "mint", "export format")
	cmd.Flags().StringVar(&o.after, "after", "", "only transactions strictly after this date (MM/DD/YYYY)")
	cmd.Flags().StringVar(&o.onOrAfter, "on-or-after", "", "only transactions on or after this date (MM/DD/YYYY)")
	cmd.Flags().StringVar(&o.before, "before", "", "only transactions strictly before this date (MM/DD/YYYY)")
	cmd.Flags().StringVar(&o.onOrBefore, "on-or-before", "", "only transactions on or before this date (MM/DD/YYYY)")
	cmd.Flags().BoolVar(&o.includeTransfers, "include-transfers", false, "keep transfers between accounts")
}

// loadHistory resolves the export path (positional argument, falling
// back to the config file), loads it, and applies the date filters.
func (o *filterOptions) loadHistory(args []string) (*history.AccountHistory, error) {
	path := ""
	include := o.includeTransfers
	if len(args) > 0 {
		path = args[0]
	} else {
		cfg, err := config.Load(o.configPath)
		if errors.Is(err, fs.ErrNotExist) {
			// A missing config file is not an error in itself.
			cfg = &config.Config{}
		} else if err != nil {
			return nil, fmt.Errorf("no export given and %w", err)
		}
		if cfg.ExportPath == "" {
			return nil, errors.New("no export given and export_path not set in config")
		}
		path = cfg.ExportPath
		include = include || cfg.IncludeTransfers
	}

	h, err := history.FromFormat(path, o.format, include)
	if err != nil {
		return nil, err
	}
	return o.apply(h)
}

func (o *filterOptions) apply(h *history.AccountHistory) (*history.AccountHistory, error) {
	var err error
	if o.after != "" {
		if h, err = h.AfterString(o.after); err != nil {
			return nil, fmt.Errorf("--after: %w", err)
		}
	}
	if o.onOrAfter != "" {
		if h, err = h.OnOrAfterString(o.onOrAfter); err != nil {
			return nil, fmt.Errorf("--on-or-after: %w", err)
		}
	}
	if o.before != "" {
		if h, err = h.BeforeString(o.before); err != nil {
			return nil, fmt.Errorf("--before: %w", err)
		}
	}
	if o.onOrBefore != "" {
		if h, err = h.OnOrBeforeString(o.onOrBefore); err != nil {
			return nil, fmt.Errorf("--on-or-before: %w", err)
		}
	}
	return h, nil
}
