package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naija"
)

var (
	flagSchoolType string
	flagOwnership  string
	flagLocation   string
	flagAcronym    bool

	flagRegion     string
	flagStateField string
	flagStateName  string
)

var schoolCmd = &cobra.Command{
	Use:   "school",
	Short: "Generate a school name or acronym",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.School(&naija.SchoolOptions{
			Type:      naija.SchoolType(flagSchoolType),
			Ownership: naija.Ownership(flagOwnership),
			Location:  flagLocation,
			Acronym:   flagAcronym,
		})
	}),
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Generate a state attribute",
	Long: `Generate a state attribute. --field picks which one: name (default),
code, capital, region, region-initial or postal. --state pins the state for
capital and postal lookups instead of drawing a random one.`,
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		switch flagStateField {
		case "", "name":
			return g.State(&naija.StateOptions{Region: naija.Region(flagRegion)})
		case "code":
			return g.StateCode(&naija.StateOptions{Region: naija.Region(flagRegion)})
		case "capital":
			return g.StateCapital(flagStateName)
		case "region":
			return g.Region()
		case "region-initial":
			return g.RegionInitial()
		case "postal":
			return g.PostalCode(flagStateName)
		default:
			return "", fmt.Errorf("unknown field %q, expected one of [name code capital region region-initial postal]", flagStateField)
		}
	}),
}

var lgaCmd = &cobra.Command{
	Use:   "lga",
	Short: "Generate a local government area",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.LGA(flagStateName)
	}),
}

func init() {
	schoolCmd.Flags().StringVar(&flagSchoolType, "type", "", "filter by type (university, polytechnic, college_of_education)")
	schoolCmd.Flags().StringVar(&flagOwnership, "ownership", "", "filter by ownership (federal, state, private)")
	schoolCmd.Flags().StringVar(&flagLocation, "state", "", "filter by the state the school is located in")
	schoolCmd.Flags().BoolVar(&flagAcronym, "acronym", false, "print the acronym instead of the full name")

	stateCmd.Flags().StringVar(&flagStateField, "field", "name", "attribute to print: name, code, capital, region, region-initial or postal")
	stateCmd.Flags().StringVar(&flagRegion, "region", "", "filter by region initial (NC, NE, NW, SE, SS, SW)")
	stateCmd.Flags().StringVar(&flagStateName, "state", "", "pin a state for capital and postal lookups")
	lgaCmd.Flags().StringVar(&flagStateName, "state", "", "pin the state to draw LGAs from")

	rootCmd.AddCommand(schoolCmd, stateCmd, lgaCmd)
}
