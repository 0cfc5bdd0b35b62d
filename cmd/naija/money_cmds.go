package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagMinAmount float64
	flagMaxAmount float64
)

var pricetagCmd = &cobra.Command{
	Use:   "pricetag",
	Short: "Generate a naira price tag",
	Long: `Generate a naira price tag such as ₦1,250.00. Without flags the amount
is drawn between 1 and 100000 naira with occasional round figures; --min and
--max bound the amount exactly.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bounded := cmd.Flags().Changed("min") || cmd.Flags().Changed("max")

		gen, err := newGenerator()
		if err != nil {
			return err
		}
		for range flagRepeat {
			var tag string
			if bounded {
				amount, err := gen.Amount(flagMinAmount, flagMaxAmount)
				if err != nil {
					return err
				}
				tag = gen.PriceTag(amount)
			} else {
				tag = gen.RandomPriceTag()
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag)
		}
		return nil
	},
}

func init() {
	pricetagCmd.Flags().Float64Var(&flagMinAmount, "min", 1, "lower bound for the amount in naira")
	pricetagCmd.Flags().Float64Var(&flagMaxAmount, "max", 100_000, "upper bound for the amount in naira")

	rootCmd.AddCommand(pricetagCmd)
}
