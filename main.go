// Command pvmizer plans rooftop solar installations. It reports where the
// sun is, lays panels out on a roof and estimates their output with
// shading from nearby obstacles, measures hand-drawn building footprints,
// and plots a year of sunlight at a point on the roof.
//
// Most commands take an optional site file in YAML; see package site for
// its format. Without one, a default site is used.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/Kubis4/PVmizer-GEO-sub002/site"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pvmizer: ")

	rootCmd := &cobra.Command{
		Use:   "pvmizer",
		Short: "Plan rooftop PV panels: sun, layout, shading and yield",
	}

	rootCmd.AddCommand(
		sunCmd(),
		layoutCmd(),
		footprintCmd(),
		heatmapCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadSite loads the site file named by args, if any.
func loadSite(args []string) (*site.Site, error) {
	if len(args) == 0 {
		return site.Defaults(), nil
	}
	return site.Load(args[0])
}
