package commands

import (
	"fmt"

	"medtour/internal/config"
	"medtour/internal/service"

	"github.com/spf13/cobra"
)

func slidesCmd() *cobra.Command {
	var (
		width       int
		count       int
		breakpoints []int
	)

	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Show how a carousel splits items at a viewport width",
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 {
				return fmt.Errorf("--width must be positive, got %d", width)
			}
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}
			if err := config.ValidateBreakpoints("--breakpoints", breakpoints); err != nil {
				return err
			}

			items := make([]int, count)
			for i := range items {
				items[i] = i + 1
			}
			perSlide := service.ItemsPerSlide(width, breakpoints)
			slides := service.ComputeSlides(items, perSlide)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d items per slide, %d slides\n", perSlide, len(slides))
			for i, s := range slides {
				fmt.Fprintf(out, "  slide %d: %v\n", i+1, s)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 1280, "viewport width in CSS pixels")
	cmd.Flags().IntVar(&count, "count", 0, "number of items in the carousel")
	cmd.Flags().IntSliceVar(&breakpoints, "breakpoints", service.DefaultBreakpoints, "ascending widths at which a slide gains an item")
	return cmd
}
