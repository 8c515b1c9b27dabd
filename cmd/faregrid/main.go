package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"faregrid/internal/aggregator"
	"faregrid/internal/calendar"
	"faregrid/internal/config"
	"faregrid/internal/itinerary"
	"faregrid/internal/ratelimit"
	"faregrid/internal/session"
	"faregrid/internal/skyscanner"
	"faregrid/pkg/httpclient"
)

type options struct {
	from      string
	to        string
	year      int
	months    []int
	days      [][]int
	durations []int
	locale    string
	market    string
	currency  string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	client, err := skyscanner.NewClient(skyscanner.ClientConfig{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		HTTPClient: httpclient.New(),
		Limiter:    ratelimit.NewEndpointLimiterWithDefaults(),
	})
	if err != nil {
		log.Fatalf("failed to build API client: %v", err)
	}

	pairs, err := calendar.CreateDates(opts.year, opts.months, opts.days, opts.durations)
	if err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	base := skyscanner.NewQuery(opts.market, opts.locale, opts.currency)
	drivers := make([]*session.Driver, 0, len(pairs))
	for _, p := range pairs {
		q := base.Clone()
		q.AddLeg(skyscanner.QueryLeg{
			OriginPlaceID:      skyscanner.IATAPlace(opts.from),
			DestinationPlaceID: skyscanner.IATAPlace(opts.to),
			Date:               skyscanner.DateOf(p.Outbound),
		})
		q.AddLeg(skyscanner.QueryLeg{
			OriginPlaceID:      skyscanner.IATAPlace(opts.to),
			DestinationPlaceID: skyscanner.IATAPlace(opts.from),
			Date:               skyscanner.DateOf(p.Return),
		})
		drivers = append(drivers, session.New(client, q))
	}

	agg := aggregator.New(drivers, aggregator.DefaultConfig())
	snapshots := agg.Run(context.Background())

	var formatted []itinerary.Itinerary
	for _, snapshot := range snapshots {
		formatted = append(formatted, itinerary.Format(snapshot.Content.Results)...)
	}
	formatted = itinerary.FilterPriced(formatted)
	itinerary.SortByPrice(formatted)

	// Most expensive first.
	for i := len(formatted) - 1; i >= 0; i-- {
		fmt.Println(formatted[i])
	}
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("faregrid", flag.ContinueOnError)

	var opts options
	var monthsArg, daysArg, durationArg string

	fs.StringVar(&opts.from, "from", "", "outbound origin IATA code")
	fs.StringVar(&opts.to, "to", "", "outbound destination IATA code (return leg is reversed)")
	fs.IntVar(&opts.year, "year", 0, "calendar year")
	fs.StringVar(&monthsArg, "months", "", "comma-separated months, one per day group")
	fs.StringVar(&monthsArg, "m", "", "shorthand for -months")
	fs.StringVar(&daysArg, "days", "", "day groups, one per month, e.g. 1,2:3,4")
	fs.StringVar(&durationArg, "duration", "", "comma-separated trip lengths in days")
	fs.StringVar(&durationArg, "d", "", "shorthand for -duration")
	fs.StringVar(&opts.locale, "locale", "zh-TW", "response locale")
	fs.StringVar(&opts.market, "market", "TW", "market country code")
	fs.StringVar(&opts.currency, "currency", "TWD", "price currency code")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.from == "" || opts.to == "" {
		return options{}, fmt.Errorf("-from and -to are required")
	}
	if opts.year == 0 {
		return options{}, fmt.Errorf("-year is required")
	}
	if monthsArg == "" || daysArg == "" || durationArg == "" {
		return options{}, fmt.Errorf("-months, -days and -duration are required")
	}

	var err error
	if opts.months, err = parseIntList(monthsArg); err != nil {
		return options{}, fmt.Errorf("invalid months: %w", err)
	}
	if opts.durations, err = parseIntList(durationArg); err != nil {
		return options{}, fmt.Errorf("invalid duration: %w", err)
	}
	if opts.days, err = calendar.ParseInputDays(daysArg); err != nil {
		return options{}, fmt.Errorf("invalid days: %w", err)
	}
	if len(opts.months) != len(opts.days) {
		return options{}, calendar.ErrLengthMismatch
	}

	opts.market = strings.ToUpper(opts.market)
	opts.currency = strings.ToUpper(opts.currency)
	return opts, nil
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
