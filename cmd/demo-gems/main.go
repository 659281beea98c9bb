package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/cymmbal/demo-gems/internal/app"
	"github.com/cymmbal/demo-gems/version"
)

var rootCmd = &cobra.Command{
	Use:   "demo-gems",
	Short: "An interactive 3D gem viewer",
	Long: `demo-gems renders a procedurally generated gemstone and lets you spin it,
zoom in discrete steps and watch it drift with the pointer. Preferences
persist between sessions and reload live when the settings file is edited.`,
	Version: version.GetFullVersion(),
	Run:     runViewer,
}

var (
	flagSettings    string
	flagSensitivity float64
	flagFacets      int
	flagVerbose     bool
)

func init() {
	rootCmd.Flags().StringVar(&flagSettings, "settings", "", "settings file path (default: user config dir)")
	rootCmd.Flags().Float64Var(&flagSensitivity, "sensitivity", 0, "drag sensitivity multiplier")
	rootCmd.Flags().IntVar(&flagFacets, "facets", 0, "girdle facet count")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log controller events")
}

func runViewer(cmd *cobra.Command, args []string) {
	app.Run(app.Options{
		SettingsPath: settingsPath(),
		Sensitivity:  flagSensitivity,
		Facets:       flagFacets,
		Verbose:      flagVerbose,
	})
}

func settingsPath() string {
	if flagSettings != "" {
		return flagSettings
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "demo-gems-settings.json"
	}
	return filepath.Join(dir, "demo-gems", "settings.json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
