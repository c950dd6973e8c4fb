package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/neexbeast/aerovoyage/internal/catalog"
	"github.com/neexbeast/aerovoyage/internal/flight"
)

type searchOptions struct {
	from       string
	to         string
	class      string
	passengers int
	seed       uint64
	asJSON     bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:           "flightsearch",
		Short:         "Search simulated flights between two cities",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rng flight.Rand
			if cmd.Flags().Changed("seed") {
				rng = flight.NewSeededRand(opts.seed)
			}
			return runSearch(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, rng)
		},
	}

	cmd.Flags().StringVarP(&opts.from, "from", "f", "", "Origin city or airport code")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "Destination city or airport code")
	cmd.Flags().StringVarP(&opts.class, "class", "c", string(catalog.Economy), "Cabin class: Economy, Premium Economy or Business")
	cmd.Flags().IntVarP(&opts.passengers, "passengers", "p", 1, "Number of passengers")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible schedules")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the search result as JSON")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "v", false, "Enable debug logs")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	cmd.AddCommand(newLocationsCmd(), newCarriersCmd())
	return cmd
}

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the supported cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CITY\tCODE\tLAT\tLON")
			for _, l := range catalog.Default().Locations() {
				fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\n", l.Name, l.Code, l.Lat, l.Lon)
			}
			return tw.Flush()
		},
	}
}

func newCarriersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "carriers",
		Short: "List the carriers and their fare multipliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CARRIER\tMULTIPLIER\tRATING")
			for _, c := range catalog.Default().Carriers() {
				fmt.Fprintf(tw, "%s %s\t%.2f\t%.1f\n", c.Logo, c.Name, c.Multiplier, c.Rating)
			}
			return tw.Flush()
		},
	}
}

func runSearch(out, errOut io.Writer, opts *searchOptions, rng flight.Rand) error {
	level := slog.LevelWarn
	if opts.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	class, err := catalog.ParseCabinClass(opts.class)
	if err != nil {
		return err
	}

	gen := flight.NewGenerator(catalog.Default(), rng)
	result, err := gen.Search(flight.Query{
		Origin:      opts.from,
		Destination: opts.to,
		Class:       class,
		Passengers:  opts.passengers,
	})
	if err != nil {
		return fmt.Errorf("searching flights: %w", err)
	}
	log.Debug("search complete", "id", result.ID, "offers", len(result.Offers), "distance_km", result.DistanceKM)

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Empty() {
		_, err := fmt.Fprintln(out, "Please select different departure and destination cities.")
		return err
	}
	return printSearch(out, result)
}

func printSearch(out io.Writer, s *flight.Search) error {
	fmt.Fprintf(out, "%s → %s · %s · %d passenger(s)\n\n",
		s.Query.Origin, s.Query.Destination, s.Query.Class, s.Query.Passengers)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CARRIER\tFLIGHT\tROUTE\tDURATION\tSTOPS\tSEATS\tPRICE\tSAVE")
	for _, o := range s.Offers {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			o.Carrier.Logo, o.Carrier.Name, o.FlightNo, o.Route, o.DurationStr,
			o.StopsStr, o.Seats, rupees(o.Price), rupees(o.Savings))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sum := s.Summary
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Cheapest: %s %s\n", sum.Cheapest.Carrier.Name, rupees(sum.Cheapest.Price))
	fmt.Fprintf(out, "Fastest:  %s %s\n", sum.Fastest.Carrier.Name, sum.Fastest.DurationStr)
	fmt.Fprintf(out, "Average:  %s\n", rupees(sum.AveragePrice))
	_, err := fmt.Fprintf(out, "Distance: %d km\n", s.DistanceKM)
	return err
}

// amounts groups thousands the way the fares are shown to users.
var amounts = message.NewPrinter(language.English)

// rupees formats an amount with thousands separators, e.g. ₹14,213.
func rupees(n int) string {
	return amounts.Sprintf("₹%d", n)
}
