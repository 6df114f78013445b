package main

import (
	"context"
	"fmt"

	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/logx"
)

// ConsoleNotifier implements the Notifier interface by printing reset tokens
// to the terminal. Swap for a mail integration in production.
type ConsoleNotifier struct{}

// NewConsoleNotifier creates a new console-based notifier
func NewConsoleNotifier() auth.Notifier {
	return &ConsoleNotifier{}
}

// SendPasswordReset prints the reset token to the terminal
func (n *ConsoleNotifier) SendPasswordReset(ctx context.Context, email kernel.Email, token string) error {
	fmt.Println("==================================================")
	fmt.Printf("PASSWORD RESET NOTIFICATION\n")
	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Token: %s\n", token)
	fmt.Println("==================================================")

	logx.Infof("Password reset token sent to %s", email)
	return nil
}
