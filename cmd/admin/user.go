package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	domainErrors "gitcraft-go-server/domain/errors"
	domainRepo "gitcraft-go-server/domain/repository"
	"gitcraft-go-server/repository"

	"github.com/spf13/cobra"
)

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User record commands",
	}

	cmd.AddCommand(newUserGetCommand())

	return cmd
}

func newUserGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get <clerk-user-id>",
		Short:   "Print the local record for a Clerk user id as JSON",
		Example: "  admin user get user_2abc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			return printUser(cmd.Context(), repository.NewUserRepository(db), cmd.OutOrStdout(), args[0])
		},
	}
}

func printUser(ctx context.Context, repo domainRepo.UserRepository, out io.Writer, subjectID string) error {
	user, err := repo.FindByExternalID(ctx, subjectID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%s: %w", subjectID, domainErrors.ErrUserNotFound)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(user)
}
