package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the environment configuration",
	}

	configCheckCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate credentials and defaults for the active environment",
		Args:  cobra.NoArgs,
		RunE:  runConfigCheck,
	}
)

func init() {
	configCmd.AddCommand(configCheckCmd)
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	cfg, _, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	rc, err := newRequestContext(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "environment:       %s\n", rc.Environment())
	fmt.Fprintf(out, "login:             %s\n", rc.Auth().Login)
	fmt.Fprintf(out, "master fid:        %s\n", rc.Auth().MasterFID)
	fmt.Fprintf(out, "generation policy: %s\n", rc.GenerationPolicy())
	fmt.Fprintf(out, "gateway:           %s (timeout %s)\n", cfg.Gateway.URL, cfg.Gateway.Timeout)
	if addr, ok := rc.PickupAddress(); ok {
		fmt.Fprintf(out, "pickup address:    %s, %s %s, %s\n", addr.Address, addr.PostalCode, addr.City, addr.CountryCode)
	} else {
		fmt.Fprintln(out, "pickup address:    not configured (every shipment must name a sender)")
	}
	fmt.Fprintln(out, "configuration OK")
	return nil
}
