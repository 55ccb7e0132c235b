package setup

import (
	"context"
	"fmt"
	"strings"
)

// checkResult pairs a check name with its outcome, preserving run order.
type checkResult struct {
	name   string
	passed bool
}

// RunAll runs the four checks in order. No check's failure prevents the
// others from running; the aggregate result is the AND of all four.
func (c *Checker) RunAll(ctx context.Context) bool {
	fmt.Fprintln(c.out, "ROBOFLOW SETUP TEST")

	results := []checkResult{
		{"Environment Configuration", c.CheckConfig()},
		{"External Tools", c.CheckDependencies()},
		{"Dataset Structure", c.CheckDataset()},
		{"Roboflow Connection", c.CheckConnection(ctx)},
	}

	c.header("TEST SUMMARY")

	allPassed := true
	toolsMissing := false
	for _, result := range results {
		if result.passed {
			fmt.Fprintf(c.out, "  %s PASS: %s\n", pass, result.name)
			continue
		}
		fmt.Fprintf(c.out, "  %s FAIL: %s\n", fail, result.name)
		allPassed = false
		if result.name == "External Tools" {
			toolsMissing = true
		}
	}

	divider := strings.Repeat("=", 60)
	fmt.Fprintf(c.out, "\n%s\n", divider)
	if allPassed {
		fmt.Fprintln(c.out, "ALL TESTS PASSED!")
		fmt.Fprintln(c.out, "You're ready to upload your dataset.")
	} else {
		fmt.Fprintln(c.out, "SOME TESTS FAILED")
		fmt.Fprintln(c.out, "Please fix the issues above before uploading.")
		if toolsMissing {
			fmt.Fprintln(c.out, "\nTo fix: pip install roboflow")
		}
	}
	fmt.Fprintf(c.out, "%s\n", divider)

	return allPassed
}
