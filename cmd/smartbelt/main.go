// Command smartbelt drives the belt-drag engine from the command line:
// checking a single YAML test case, rendering a grid to SVG, or running
// the rapid-driven fuzz suite.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dshills/smartbelt/pkg/gridtext"
	"github.com/dshills/smartbelt/pkg/render"
	"github.com/dshills/smartbelt/pkg/testcase"
)

const version = "1.0.0"

// CLI flags
var (
	casePath     = flag.String("case", "", "Path to a YAML drag test case to run and check")
	variantFlag  = flag.String("variant", "normal", "Drag variant to run: normal, wiggle, megawiggle, or forwardback")
	allTransform = flag.Bool("all-transforms", false, "Check -case under all eight grid symmetries and the reverse direction")
	fuzzFlag     = flag.Bool("fuzz", false, "Run the rapid-driven structural invariant suite (shells out to `go test`)")
	fuzzChecks   = flag.Int("fuzz-checks", 100, "Number of rapid checks to run per fuzz property")
	renderPath   = flag.String("render", "", "Path to a grid-text file to render as SVG")
	renderOut    = flag.String("render-out", "out.svg", "Output path for -render")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("smartbelt version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if *casePath == "" && !*fuzzFlag && *renderPath == "" {
		fmt.Fprintln(os.Stderr, "Error: one of -case, -fuzz, or -render is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *casePath != "" {
		if err := runCase(*casePath); err != nil {
			return err
		}
	}
	if *renderPath != "" {
		if err := runRender(*renderPath, *renderOut); err != nil {
			return err
		}
	}
	if *fuzzFlag {
		if err := runFuzz(*fuzzChecks); err != nil {
			return err
		}
	}
	return nil
}

func parseVariant(s string) (testcase.Variant, error) {
	switch strings.ToLower(s) {
	case "normal":
		return testcase.Normal, nil
	case "wiggle":
		return testcase.Wiggle, nil
	case "megawiggle":
		return testcase.MegaWiggle, nil
	case "forwardback":
		return testcase.ForwardBack, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

func runCase(path string) error {
	if *verbose {
		fmt.Printf("Loading test case from %s\n", path)
	}
	dc, err := testcase.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load case: %w", err)
	}

	variant, err := parseVariant(*variantFlag)
	if err != nil {
		return err
	}

	if *allTransform {
		if *verbose {
			fmt.Printf("Checking %q under all eight symmetries (variant=%s)\n", dc.Name, variant)
		}
		if err := testcase.CheckAllTransforms(dc, variant); err != nil {
			return fmt.Errorf("case %q failed: %w", dc.Name, err)
		}
		fmt.Printf("PASS %s (all transforms, variant=%s)\n", dc.Name, variant)
		return nil
	}

	if err := testcase.Check(dc, false, variant); err != nil {
		return fmt.Errorf("case %q failed: %w", dc.Name, err)
	}
	fmt.Printf("PASS %s (variant=%s)\n", dc.Name, variant)
	return nil
}

func runRender(path, outPath string) error {
	if *verbose {
		fmt.Printf("Reading grid from %s\n", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read grid file: %w", err)
	}
	g, _, err := gridtext.Parse(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse grid: %w", err)
	}

	r := render.NewSVGRenderer(render.DefaultOptions())
	if err := render.SaveToFile(r, g, outPath); err != nil {
		return fmt.Errorf("failed to render SVG: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(outPath)
		fmt.Printf("Wrote %d bytes to %s\n", info.Size(), outPath)
	}
	fmt.Printf("Rendered %s -> %s\n", path, outPath)
	return nil
}

// runFuzz shells out to `go test` over pkg/fuzz: the rapid properties
// draw their random inputs through *rapid.T, which only exists inside a
// running test, so there is no way to drive them from a plain binary
// without reimplementing rapid's shrinking and reporting machinery.
func runFuzz(checks int) error {
	args := []string{"test", "-run", "TestFuzz", "-v", fmt.Sprintf("-rapid.checks=%d", checks), "./pkg/fuzz/..."}
	if *verbose {
		fmt.Printf("Running: go %s\n", strings.Join(args, " "))
	}
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("fuzz suite failed: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: smartbelt -case <case.yaml> | -fuzz | -render <grid.txt> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'smartbelt -help' for detailed help")
}

func printHelp() {
	fmt.Printf("smartbelt version %s\n\n", version)
	fmt.Println("Check belt-drag test cases, render grids to SVG, and run the")
	fmt.Println("rapid-driven structural invariant suite.")
	fmt.Println("\nUsage:")
	fmt.Println("  smartbelt -case <case.yaml> [-variant normal|wiggle|megawiggle|forwardback] [-all-transforms]")
	fmt.Println("  smartbelt -render <grid.txt> [-render-out out.svg]")
	fmt.Println("  smartbelt -fuzz [-fuzz-checks 100]")
	fmt.Println("\nFlags:")
	fmt.Println("  -case string         Path to a YAML drag test case to run and check")
	fmt.Println("  -variant string      Drag variant: normal, wiggle, megawiggle, forwardback (default: normal)")
	fmt.Println("  -all-transforms      Check -case under all eight grid symmetries and the reverse direction")
	fmt.Println("  -render string       Path to a grid-text file to render as SVG")
	fmt.Println("  -render-out string   Output path for -render (default: out.svg)")
	fmt.Println("  -fuzz                Run the rapid-driven structural invariant suite")
	fmt.Println("  -fuzz-checks int     Number of rapid checks per fuzz property (default: 100)")
	fmt.Println("  -verbose             Enable verbose output")
	fmt.Println("  -version             Print version and exit")
	fmt.Println("  -help                Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  smartbelt -case testdata/splitter_integration.yaml -all-transforms")
	fmt.Println("  smartbelt -render testdata/curved_belt.txt -render-out curved.svg")
	fmt.Println("  smartbelt -fuzz -fuzz-checks 500 -verbose")
}
