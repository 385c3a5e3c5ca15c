package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/core/service"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
	"github.com/99minutos/dpd-compiler/pkg/logger"
)

var (
	inputFile string
	submit    bool
	policy    string

	compileCmd = &cobra.Command{
		Use:   "compile",
		Short: "Build request documents from a JSON input file",
	}

	compileShipmentCmd = &cobra.Command{
		Use:   "shipment",
		Short: "Compile a shipment (generatePackagesNumbersV4)",
		Args:  cobra.NoArgs,
		RunE:  runCompileShipment,
	}

	compileLabelCmd = &cobra.Command{
		Use:   "label",
		Short: "Compile a label request (generateSpedLabelsV4)",
		Args:  cobra.NoArgs,
		RunE:  runCompileLabel,
	}
)

func init() {
	for _, c := range []*cobra.Command{compileShipmentCmd, compileLabelCmd} {
		c.Flags().StringVarP(&inputFile, "file", "f", "-", "input JSON file, - for stdin")
		c.Flags().BoolVar(&submit, "submit", false, "send the compiled document to the gateway")
		c.Flags().StringVar(&policy, "policy", "", "generation policy override (name or 1-3)")
		compileCmd.AddCommand(c)
	}
}

func runCompileShipment(cmd *cobra.Command, _ []string) error {
	var in ports.ShipmentInput
	if err := readInput(cmd.InOrStdin(), &in); err != nil {
		return err
	}

	compiler, err := newCompiler(cmd.Context())
	if err != nil {
		return err
	}

	if submit {
		resp, err := compiler.SubmitShipment(cmd.Context(), in)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), resp)
	}

	req, err := compiler.CompileShipment(in)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), req)
}

func runCompileLabel(cmd *cobra.Command, _ []string) error {
	var in ports.LabelInput
	if err := readInput(cmd.InOrStdin(), &in); err != nil {
		return err
	}

	compiler, err := newCompiler(cmd.Context())
	if err != nil {
		return err
	}

	if submit {
		resp, err := compiler.SubmitLabel(cmd.Context(), in)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), resp)
	}

	req, err := compiler.CompileLabel(in)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), req)
}

// newCompiler builds a compiler from the environment. Without --submit no
// invoker is attached, so nothing can reach the network.
func newCompiler(ctx context.Context) (*service.Compiler, error) {
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	rc, err := newRequestContext(cfg)
	if err != nil {
		return nil, err
	}

	var inv ports.RemoteInvoker
	if submit {
		inv = newInvoker(cfg, log)
	}
	compiler := service.NewCompiler(rc, inv, nil, logger.Component("compiler"))

	if policy != "" {
		if err := compiler.SetGenerationPolicy(policy); err != nil {
			return nil, err
		}
	}
	return compiler, nil
}

func readInput(stdin io.Reader, v any) error {
	r := stdin
	if inputFile != "-" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := validation.DecodeJSON(r, v); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
