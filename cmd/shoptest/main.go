package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/demoshop/testkit/internal/booking"
	"github.com/demoshop/testkit/internal/config"
	"github.com/demoshop/testkit/internal/fixtures"
)

var version = "0.1.0"

// buildGenerator loads generation bounds from the environment and applies an
// optional seed for reproducible output.
func buildGenerator(c *cli.Context) (*fixtures.Generator, error) {
	cfg, err := config.LoadGeneratorConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid generator configuration: %w", err)
	}

	var opts []fixtures.Option
	if c.IsSet("seed") {
		opts = append(opts, fixtures.WithSeed(c.Int64("seed")))
	}
	return fixtures.NewGenerator(cfg, opts...)
}

// FixturesCommand returns the fixtures command, which prints generated
// records as JSON for seeding external tools.
func FixturesCommand() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "Generate randomized test records as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Record kind to generate: booking or user",
				Value: "booking",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of records to generate",
				Value: 1,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Seed the random source for reproducible output",
			},
		},
		Action: func(c *cli.Context) error {
			gen, err := buildGenerator(c)
			if err != nil {
				return err
			}

			count := c.Int("count")
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			var records interface{}
			switch kind := c.String("kind"); kind {
			case "booking":
				records = fixtures.Batch(count, func() fixtures.BookingRecord {
					return gen.Booking(nil)
				})
			case "user":
				records = fixtures.Batch(count, func() fixtures.UserRecord {
					return gen.User(nil)
				})
			default:
				return fmt.Errorf("unknown fixture kind %q (want booking or user)", kind)
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		},
	}
}

// PingCommand returns the ping command, a quick reachability check for the
// booking API before a test run.
func PingCommand() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Check that the booking API is reachable",
		Action: func(c *cli.Context) error {
			cfg := config.LoadSuiteConfig()
			client := booking.NewClient(cfg.BookingAPIBaseURL)
			if err := client.Ping(c.Context); err != nil {
				return fmt.Errorf("booking API at %s is not reachable: %w", cfg.BookingAPIBaseURL, err)
			}
			fmt.Fprintf(c.App.Writer, "booking API at %s is up\n", cfg.BookingAPIBaseURL)
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "shoptest",
		Usage:   "Test-suite tooling for the demo shop and booking API",
		Version: version,
		Commands: []*cli.Command{
			FixturesCommand(),
			PingCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
