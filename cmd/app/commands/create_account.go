package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	accountUseCase "github.com/allisson/accounts/internal/account/usecase"
)

// RunCreateAccount registers a new account from the command line and prints
// the account ID along with the first session token. Outputs in either text
// or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAccount(
	ctx context.Context,
	useCase accountUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	localID string,
	firstName string,
	lastName string,
	name string,
	email string,
	password string,
	format string,
) error {
	parsedLocalID, err := uuid.Parse(localID)
	if err != nil {
		return fmt.Errorf("invalid local-id: %w", err)
	}

	logger.Info("creating new account", slog.String("email", email))

	input := &accountDomain.RegisterAccountInput{
		LocalID:   parsedLocalID,
		FirstName: firstName,
		LastName:  lastName,
		Name:      name,
		Email:     email,
		Password:  password,
	}

	output, err := useCase.Register(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputCreateAccountJSON(output, writer)
	} else {
		outputCreateAccountText(output, writer)
	}

	logger.Info("account created successfully",
		slog.String("account_id", output.Account.ID.String()),
		slog.String("email", output.Account.Email),
	)

	return nil
}

// outputCreateAccountText outputs the result in human-readable text format.
func outputCreateAccountText(output *accountDomain.AuthOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "Account created successfully!")
	_, _ = fmt.Fprintf(writer, "Account ID: %s\n", output.Account.ID)
	_, _ = fmt.Fprintf(writer, "Email: %s\n", output.Account.Email)
	_, _ = fmt.Fprintf(writer, "Session Token: %s\n", output.PlainToken)
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: Save the session token - it cannot be retrieved later!")
}

// outputCreateAccountJSON outputs the result in JSON format for machine consumption.
func outputCreateAccountJSON(output *accountDomain.AuthOutput, writer io.Writer) {
	result := map[string]interface{}{
		"account_id": output.Account.ID.String(),
		"email":      output.Account.Email,
		"token":      output.PlainToken,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
