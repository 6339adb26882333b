package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newDestinationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "destination",
		Short: "Browse medical-travel destinations",
	}

	cmd.AddCommand(newDestinationListCmd())

	return cmd
}

func newDestinationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List destination cities",
		RunE: func(cmd *cobra.Command, args []string) error {
			destinations, err := apiClient.Destinations().List(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(destinations)
			}

			table := NewTable("CITY", "COUNTRY", "PROCEDURES", "SAVINGS", "PROVIDERS")
			for _, d := range destinations {
				table.AddRow(
					d.City,
					d.Country,
					truncate(strings.Join(d.Procedures, ", "), 40),
					d.Savings,
					strconv.Itoa(d.Providers),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newTranslationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "i18n",
		Short: "Inspect translation catalogs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "locales",
		Short: "List available locales",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := apiClient.Translations().Locales(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(info)
			}

			for _, locale := range info.Locales {
				marker := " "
				if locale == info.Default {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, locale)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve <locale> <key>",
		Short: "Resolve a translation key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := apiClient.Translations().Resolve(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	})

	return cmd
}
