package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trustmed/trustmed/pkg/client"
)

func newProviderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider",
		Short: "Browse and search the provider catalog",
	}

	cmd.AddCommand(newProviderListCmd())
	cmd.AddCommand(newProviderSearchCmd())
	cmd.AddCommand(newProviderGetCmd())
	cmd.AddCommand(newProviderFeaturedCmd())

	return cmd
}

func renderProviders(providers []client.Provider) {
	table := NewTable("ID", "NAME", "SPECIALTY", "LOCATION", "RATING", "FROM", "STATUS")
	for _, p := range providers {
		from := "-"
		if len(p.Procedures) > 0 {
			min := p.Procedures[0].Price
			for _, proc := range p.Procedures[1:] {
				if proc.Price < min {
					min = proc.Price
				}
			}
			from = formatPrice(min)
		}
		table.AddRow(
			p.ID,
			truncate(p.Name, 30),
			truncate(p.Specialty, 24),
			truncate(p.Location, 24),
			fmt.Sprintf("%.1f (%d)", p.Rating, p.ReviewCount),
			from,
			formatVerified(p.Verified),
		)
	}
	table.Render()
}

func formatPrice(cop int64) string {
	return "COP " + strconv.FormatInt(cop, 10)
}

func newProviderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the full catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Providers().List(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			renderProviders(result.Providers)
			fmt.Printf("\n%d providers\n", result.Total)
			return nil
		},
	}
}

func newProviderSearchCmd() *cobra.Command {
	var (
		procedure   string
		location    string
		priceMin    int64
		priceMax    int64
		minRating   float64
		languages   []string
		specialties []string
		sortKey     string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Providers().Search(context.Background(), client.SearchOptions{
				Procedure:   procedure,
				Location:    location,
				PriceMin:    priceMin,
				PriceMax:    priceMax,
				MinRating:   minRating,
				Languages:   languages,
				Specialties: specialties,
				Sort:        sortKey,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			if result.Total == 0 {
				fmt.Println("No providers found. Try adjusting your search filters.")
				return nil
			}

			renderProviders(result.Providers)
			fmt.Printf("\n%d providers found\n", result.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&procedure, "procedure", "", "procedure or specialty substring")
	cmd.Flags().StringVar(&location, "location", "", "location substring")
	cmd.Flags().Int64Var(&priceMin, "price-min", 0, "minimum procedure price")
	cmd.Flags().Int64Var(&priceMax, "price-max", 0, "maximum procedure price (0 = open)")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "minimum rating")
	cmd.Flags().StringSliceVar(&languages, "language", nil, "required provider language (repeatable)")
	cmd.Flags().StringSliceVar(&specialties, "specialty", nil, "specialty set (repeatable)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort: relevance, price, rating or experience")

	return cmd
}

func newProviderGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one provider profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := apiClient.Providers().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(p)
			}

			fmt.Printf("%s\n", p.Name)
			fmt.Println(strings.Repeat("=", len(p.Name)))
			fmt.Printf("Title:      %s\n", p.Title)
			fmt.Printf("Specialty:  %s\n", p.Specialty)
			fmt.Printf("Location:   %s\n", p.Location)
			fmt.Printf("Rating:     %.1f (%d reviews)\n", p.Rating, p.ReviewCount)
			fmt.Printf("Experience: %d years\n", p.Experience)
			fmt.Printf("Languages:  %s\n", strings.Join(p.Languages, ", "))
			fmt.Printf("Status:     %s\n", formatVerified(p.Verified))

			if len(p.Procedures) > 0 {
				fmt.Println("\nProcedures:")
				table := NewTable("NAME", "PRICE", "DURATION")
				for _, proc := range p.Procedures {
					table.AddRow(proc.Name, formatPrice(proc.Price), proc.Duration)
				}
				table.Render()
			}
			return nil
		},
	}
}

func newProviderFeaturedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List the home page providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Providers().Featured(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			renderProviders(result.Providers)
			return nil
		},
	}
}
