package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/procureflow/backend-go/internal/seed"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Generate the demo dataset the server is seeded with",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Write a JSON seed fixture",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Usage:   "Output fixture path",
						Value:   "seed.json",
						EnvVars: []string{"APP_SEED_FILE"},
					},
					&cli.IntFlag{
						Name:  "prs",
						Usage: "Number of purchase requests",
						Value: 7,
					},
					&cli.IntFlag{
						Name:  "pos",
						Usage: "Number of purchase orders",
						Value: 8,
					},
					&cli.IntFlag{
						Name:  "vendors",
						Usage: "Number of vendors",
						Value: 6,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "RNG seed for reproducible fixtures (0 uses the clock)",
					},
				},
				Action: generate,
			},
			{
				Name:   "inspect",
				Usage:  "Summarize an existing fixture",
				Action: inspect,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Usage:    "Fixture path",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(c *cli.Context) error {
	dataset := seed.Generate(seed.Config{
		PurchaseRequests: c.Int("prs"),
		PurchaseOrders:   c.Int("pos"),
		Vendors:          c.Int("vendors"),
		Seed:             c.Int64("seed"),
	})

	out := c.String("out")
	if err := seed.WriteFile(out, dataset); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}

	fmt.Printf("wrote %s (%s)\n", out, seed.Describe(dataset))
	return nil
}

func inspect(c *cli.Context) error {
	dataset, err := seed.LoadFile(c.String("in"))
	if err != nil {
		return err
	}

	fmt.Println(seed.Describe(dataset))
	return nil
}
