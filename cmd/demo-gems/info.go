package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/cymmbal/demo-gems/pkg/gem"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the generated gem mesh statistics",
	Long:  "Generate the stone with the current cut parameters and print its facet count, surface area and proportions without opening a window.",
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().IntVar(&flagFacets, "facets", 0, "girdle facet count")
}

func runInfo(cmd *cobra.Command, args []string) {
	cut := gem.DefaultCut()
	if flagFacets > 0 {
		cut.Facets = flagFacets
	}
	model := gem.Generate("brilliant", cut)

	fmt.Println("Gem Mesh Information")
	fmt.Println("====================")
	fmt.Printf("Name: %s\n\n", model.Name)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Triangles: %d\n", model.TriangleCount())
	fmt.Printf("  Surface Area: %.6f square units\n\n", model.SurfaceArea())

	fmt.Println("Cut Proportions:")
	fmt.Printf("  Girdle Facets: %d\n", cut.Facets)
	fmt.Printf("  Girdle Radius: %.2f units\n", cut.Radius)
	fmt.Printf("  Table Radius: %.2f units\n", cut.TableRadius)
	fmt.Printf("  Crown Height: %.2f units\n", cut.CrownHeight)
	fmt.Printf("  Pavilion Depth: %.2f units\n", cut.PavilionDepth)
	fmt.Printf("  Total Height: %.2f units\n", cut.CrownHeight+cut.GirdleHeight+cut.PavilionDepth)
}
