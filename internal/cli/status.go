package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a platform summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if getOutputFormat() != "table" {
				summary := map[string]interface{}{}

				if result, err := apiClient.Providers().List(ctx); err == nil {
					summary["providers"] = result.Total
				}
				if destinations, err := apiClient.Destinations().List(ctx); err == nil {
					summary["destinations"] = len(destinations)
				}
				if session, err := apiClient.CurrentSession(ctx); err == nil {
					summary["authenticated"] = session.Authenticated
				}
				return printOutput(summary)
			}

			fmt.Println("TrustMed Platform")
			fmt.Println(strings.Repeat("=", 40))

			result, err := apiClient.Providers().List(ctx)
			if err != nil {
				fmt.Printf("  Providers:    (error: %v)\n", err)
			} else {
				verified := 0
				for _, p := range result.Providers {
					if p.Verified {
						verified++
					}
				}
				fmt.Printf("  Providers:    %d verified (%d total)\n", verified, result.Total)
			}

			destinations, err := apiClient.Destinations().List(ctx)
			if err != nil {
				fmt.Printf("  Destinations: (error: %v)\n", err)
			} else {
				fmt.Printf("  Destinations: %d cities\n", len(destinations))
			}

			session, err := apiClient.CurrentSession(ctx)
			switch {
			case err != nil:
				fmt.Printf("  Session:      (error: %v)\n", err)
			case session.Authenticated:
				fmt.Printf("  Session:      signed in as %s\n", session.User.Email)
			default:
				fmt.Println("  Session:      not signed in")
			}

			return nil
		},
	}
}
