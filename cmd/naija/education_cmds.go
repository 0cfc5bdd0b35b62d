package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naija"
)

var (
	flagDegreeType string
	flagAbbr       bool
	flagCourseCode bool
)

var degreeCmd = &cobra.Command{
	Use:   "degree",
	Short: "Generate a degree name or abbreviation",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		if flagAbbr {
			return g.DegreeAbbr(naija.DegreeType(flagDegreeType))
		}
		return g.Degree(naija.DegreeType(flagDegreeType))
	}),
}

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Generate a course name or code",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		if flagCourseCode {
			return g.CourseCode()
		}
		return g.Course()
	}),
}

var facultyCmd = &cobra.Command{
	Use:   "faculty",
	Short: "Generate a faculty name",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.Faculty()
	}),
}

var departmentCmd = &cobra.Command{
	Use:   "department",
	Short: "Generate a department name",
	RunE: runRepeat(func(g *naija.Generator) (string, error) {
		return g.Department()
	}),
}

func init() {
	degreeCmd.Flags().StringVar(&flagDegreeType, "type", "", "filter by degree type (undergraduate, masters, doctorate)")
	degreeCmd.Flags().BoolVar(&flagAbbr, "abbr", false, "print the abbreviation instead of the full name")
	courseCmd.Flags().BoolVar(&flagCourseCode, "code", false, "print the course code instead of the name")

	rootCmd.AddCommand(degreeCmd, courseCmd, facultyCmd, departmentCmd)
}
