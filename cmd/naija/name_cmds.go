package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naija"
)

var (
	flagTribe      string
	flagGender     string
	flagMiddleName bool
)

var fullnameCmd = &cobra.Command{
	Use:   "fullname",
	Short: "Generate a full name",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.FullName(&naija.NameOptions{
			Tribe:      naija.Tribe(flagTribe),
			Gender:     naija.Gender(flagGender),
			MiddleName: flagMiddleName,
		})
	}),
}

var firstnameCmd = &cobra.Command{
	Use:   "firstname",
	Short: "Generate a first name",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.FirstName(&naija.NameOptions{Tribe: naija.Tribe(flagTribe), Gender: naija.Gender(flagGender)})
	}),
}

var lastnameCmd = &cobra.Command{
	Use:   "lastname",
	Short: "Generate a last name",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.LastName(naija.Tribe(flagTribe))
	}),
}

var prefixCmd = &cobra.Command{
	Use:   "prefix",
	Short: "Generate a name prefix such as Mr., Chief or Dr.",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.Prefix(naija.Gender(flagGender))
	}),
}

func init() {
	for _, cmd := range []*cobra.Command{fullnameCmd, firstnameCmd} {
		cmd.Flags().StringVar(&flagTribe, "tribe", "", "filter by tribe (yoruba, igbo, hausa, edo, fulani, ijaw)")
		cmd.Flags().StringVar(&flagGender, "gender", "", "filter by gender (male, female)")
	}
	fullnameCmd.Flags().BoolVar(&flagMiddleName, "middlename", false, "include a middle name")
	lastnameCmd.Flags().StringVar(&flagTribe, "tribe", "", "filter by tribe (yoruba, igbo, hausa, edo, fulani, ijaw)")
	prefixCmd.Flags().StringVar(&flagGender, "gender", "", "filter by gender (male, female)")

	rootCmd.AddCommand(fullnameCmd, firstnameCmd, lastnameCmd, prefixCmd)
}
