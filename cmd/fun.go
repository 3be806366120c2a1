package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/pygoscelis/penguin-cli/internal/fun"
)

var asciiWidth int

var factCmd = &cobra.Command{
	Use:   "fact",
	Short: "Display a random penguin fact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		fmt.Printf("\nPenguin Fact: %s\n\n", fun.RandomFact(rng))
		return nil
	},
}

var artCmd = &cobra.Command{
	Use:   "art",
	Short: "Draw an ASCII penguin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(fun.Penguin, "\n")
		return nil
	},
}

var asciiCmd = &cobra.Command{
	Use:   "ascii [image]",
	Short: "Convert an image to ASCII art",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.ImagePath
		if len(args) == 1 {
			path = args[0]
		}
		art, err := fun.ImageToASCII(path, asciiWidth)
		if err != nil {
			return err
		}
		fmt.Print(art)
		fmt.Println("Printed ASCII image")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(factCmd)
	rootCmd.AddCommand(artCmd)
	rootCmd.AddCommand(asciiCmd)
	asciiCmd.Flags().IntVar(&asciiWidth, "width", 100, "output width in characters")
}
