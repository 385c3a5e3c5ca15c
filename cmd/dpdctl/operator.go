package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/service"
	"github.com/99minutos/dpd-compiler/internal/infrastructure/db/mongo"
	"github.com/99minutos/dpd-compiler/pkg/logger"
)

var (
	operatorUsername string
	operatorRole     string

	operatorCmd = &cobra.Command{
		Use:   "operator",
		Short: "Manage API operator accounts",
	}

	operatorAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Create an operator account (password read from stdin or DPDCTL_OPERATOR_PASSWORD)",
		Args:  cobra.NoArgs,
		RunE:  runOperatorAdd,
	}
)

func init() {
	operatorAddCmd.Flags().StringVar(&operatorUsername, "username", "", "operator username")
	operatorAddCmd.Flags().StringVar(&operatorRole, "role", domain.RoleOperator, "role: admin or operator")
	_ = operatorAddCmd.MarkFlagRequired("username")

	operatorCmd.AddCommand(operatorAddCmd)
}

func runOperatorAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, _, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	password := os.Getenv("DPDCTL_OPERATOR_PASSWORD")
	if password == "" {
		password, err = readPassword(cmd)
		if err != nil {
			return err
		}
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongo.NewOperatorRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return err
	}

	auth := service.NewAuthService(repo, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))
	op, err := auth.Register(ctx, operatorUsername, password, operatorRole)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s %q (id %s)\n", op.Role, op.Username, op.ID)
	return nil
}

func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
