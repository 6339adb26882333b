package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/trustmed/trustmed/pkg/client"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Session commands",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthRegisterCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthWhoamiCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = promptInput("Email: ")
			}
			if password == "" {
				password = promptPassword("Password: ")
			}

			ctx := context.Background()
			resp, err := apiClient.SignIn(ctx, email, password)
			if err != nil {
				return fmt.Errorf("sign-in failed: %w", err)
			}

			viper.Set("auth.token", resp.AccessToken)
			if resp.User != nil {
				viper.Set("auth.email", resp.User.Email)
			}

			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			name := email
			if resp.User != nil && resp.User.FirstName != "" {
				name = strings.TrimSpace(resp.User.FirstName + " " + resp.User.LastName)
			}
			fmt.Printf("Signed in as %s\n", name)
			fmt.Printf("Landing: %s\n", resp.Redirect)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")

	return cmd
}

func newAuthRegisterCmd() *cobra.Command {
	var email, password, firstName, lastName, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = promptInput("Email: ")
			}
			if firstName == "" {
				firstName = promptInput("First name: ")
			}
			if lastName == "" {
				lastName = promptInput("Last name: ")
			}
			if password == "" {
				password = promptPassword("Password: ")
				confirm := promptPassword("Confirm password: ")
				if password != confirm {
					return fmt.Errorf("passwords do not match")
				}
			}

			ctx := context.Background()
			resp, err := apiClient.SignUp(ctx, client.SignUpRequest{
				Email:     email,
				Password:  password,
				FirstName: firstName,
				LastName:  lastName,
				Role:      role,
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			viper.Set("auth.token", resp.AccessToken)
			viper.Set("auth.email", email)

			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			fmt.Printf("Account created. Signed in as %s\n", email)
			fmt.Printf("Landing: %s\n", resp.Redirect)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&role, "role", "patient", "account role: patient, provider, nurse or partner")

	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.SignOut(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: server sign-out failed: %v\n", err)
			}

			viper.Set("auth.token", "")
			viper.Set("auth.email", "")

			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to clear credentials: %w", err)
			}

			fmt.Println("Signed out")
			return nil
		},
	}
}

func newAuthWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := apiClient.CurrentSession(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get session: %w", err)
			}

			if !session.Authenticated {
				fmt.Println("Not signed in")
				return nil
			}

			if getOutputFormat() != "table" {
				return printOutput(session.User)
			}

			u := session.User
			fmt.Printf("Email:    %s\n", u.Email)
			if u.FirstName != "" || u.LastName != "" {
				fmt.Printf("Name:     %s\n", strings.TrimSpace(u.FirstName+" "+u.LastName))
			}
			fmt.Printf("Role:     %s\n", u.Role)
			fmt.Printf("Status:   %s\n", formatVerified(u.Verified))
			fmt.Printf("ID:       %s\n", u.ID)
			return nil
		},
	}
}

func promptInput(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(password)
}
