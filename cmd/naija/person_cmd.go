package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naija"
	"github.com/dmitrymomot/naija/internal/qr"
)

var flagQRPath string

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Generate a complete person as JSON",
	Long: `Generate a complete person with a coherent identity: the email reuses the
person's names, the tribe ties the name parts together and every field comes
from the same draw. Output is JSON, one object per repeat.

--qr additionally writes each person's vCard as a QR code PNG. With --repeat
above one the file name gets a numeric suffix: out.png, out-2.png and so on.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		gen, err := newGenerator()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		for i := range flagRepeat {
			p, err := gen.Person(&naija.NameOptions{
				Tribe:      naija.Tribe(flagTribe),
				Gender:     naija.Gender(flagGender),
				MiddleName: flagMiddleName,
			})
			if err != nil {
				return err
			}
			if err := enc.Encode(p); err != nil {
				return err
			}
			if flagQRPath != "" {
				path := numberedPath(flagQRPath, i)
				if err := qr.WriteFile(path, p.VCard(), qr.DefaultSize); err != nil {
					return err
				}
				log.Info("wrote contact qr code", "path", path, "person", p.FullName)
			}
		}
		return nil
	},
}

// numberedPath returns path unchanged for the first file and inserts a
// 1-based suffix before the extension for the rest.
func numberedPath(path string, i int) string {
	if i == 0 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

func init() {
	personCmd.Flags().StringVar(&flagTribe, "tribe", "", "filter by tribe (yoruba, igbo, hausa, edo, fulani, ijaw)")
	personCmd.Flags().StringVar(&flagGender, "gender", "", "filter by gender (male, female)")
	personCmd.Flags().BoolVar(&flagMiddleName, "middlename", false, "include a middle name")
	personCmd.Flags().StringVar(&flagQRPath, "qr", "", "write each person's vCard as a QR code PNG to this path")

	rootCmd.AddCommand(personCmd)
}
