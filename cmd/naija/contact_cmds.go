package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naija"
)

var (
	flagDomain      string
	flagEmailName   string
	flagNetwork     string
	flagPhonePrefix string
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Generate an email address",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.Email(&naija.EmailOptions{
			Tribe:  naija.Tribe(flagTribe),
			Gender: naija.Gender(flagGender),
			Domain: flagDomain,
			Name:   flagEmailName,
		})
	}),
}

var phoneCmd = &cobra.Command{
	Use:   "phone",
	Short: "Generate a phone number",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.PhoneNumber(&naija.PhoneOptions{
			Network: naija.Network(flagNetwork),
			Prefix:  flagPhonePrefix,
		})
	}),
}

func init() {
	emailCmd.Flags().StringVar(&flagTribe, "tribe", "", "filter name parts by tribe (yoruba, igbo, hausa, edo, fulani, ijaw)")
	emailCmd.Flags().StringVar(&flagGender, "gender", "", "filter the first name by gender (male, female)")
	emailCmd.Flags().StringVar(&flagDomain, "domain", "", "use a fixed domain instead of a random one")
	emailCmd.Flags().StringVar(&flagEmailName, "name", "", "build the local part from this name instead of a random pair")

	phoneCmd.Flags().StringVar(&flagNetwork, "network", "", "filter by network (mtn, glo, airtel, etisalat)")
	phoneCmd.Flags().StringVar(&flagPhonePrefix, "prefix", "", "pin the four-digit prefix, e.g. 0803")

	rootCmd.AddCommand(emailCmd, phoneCmd)
}
