package setup

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/facemask-detection/roboflow-tools/pkg/config"
	"github.com/facemask-detection/roboflow-tools/pkg/dataset"
	"github.com/facemask-detection/roboflow-tools/pkg/roboflow"
)

var (
	pass = color.New(color.FgGreen).Sprint("✓")
	fail = color.New(color.FgRed).Sprint("✗")
	warn = color.New(color.FgYellow).Sprint("⚠")
)

// tools are the external programs the uploader workflow can shell out to,
// each resolved independently.
var tools = []struct {
	command string
	name    string
}{
	{"roboflow", "Roboflow CLI"},
	{"pip", "pip"},
}

// Checker runs the setup checks and writes human-readable reports to out.
type Checker struct {
	cfg *config.Config
	out io.Writer

	// apiBase overrides the Roboflow endpoint, for tests.
	apiBase string

	lookPath func(string) (string, error)
}

func NewChecker(cfg *config.Config, out io.Writer) *Checker {
	return &Checker{
		cfg:      cfg,
		out:      out,
		lookPath: exec.LookPath,
	}
}

func (c *Checker) header(title string) {
	divider := strings.Repeat("=", 60)
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n\n", divider, title, divider)
}

// CheckConfig confirms every required key is present and non-empty,
// masking the API key on output.
func (c *Checker) CheckConfig() bool {
	c.header("TESTING ENVIRONMENT CONFIGURATION")

	if c.cfg.EnvFileFound {
		fmt.Fprintf(c.out, "%s .env file found\n", pass)
	} else {
		fmt.Fprintf(c.out, "%s .env file not found, using process environment only\n", warn)
	}

	fmt.Fprintln(c.out, "\nConfiguration:")
	allPresent := true
	for _, key := range config.RequiredKeys {
		value := c.cfg.Get(key)
		if value == "" {
			fmt.Fprintf(c.out, "  %s %s: NOT SET\n", fail, key)
			allPresent = false
			continue
		}
		if strings.Contains(key, "API_KEY") {
			value = config.MaskKey(value)
		}
		fmt.Fprintf(c.out, "  %s %s: %s\n", pass, key, value)
	}

	return allPresent
}

// CheckDependencies resolves the external tools on PATH, reporting each
// independently.
func (c *Checker) CheckDependencies() bool {
	c.header("TESTING EXTERNAL TOOLS")

	allInstalled := true
	for _, tool := range tools {
		if path, err := c.lookPath(tool.command); err == nil {
			fmt.Fprintf(c.out, "%s %s is installed (%s)\n", pass, tool.name, path)
		} else {
			fmt.Fprintf(c.out, "%s %s is NOT installed\n", fail, tool.name)
			allInstalled = false
		}
	}

	return allInstalled
}

// CheckDataset walks the split/class layout, reporting counts and missing
// directories. Passes iff at least one image exists anywhere in the tree.
func (c *Checker) CheckDataset() bool {
	c.header("TESTING DATASET STRUCTURE")

	root := c.cfg.DatasetDir()
	result, err := dataset.Scan(root)
	if err != nil {
		fmt.Fprintf(c.out, "%s %v\n", fail, err)
		return false
	}

	abs, _ := filepath.Abs(root)
	fmt.Fprintf(c.out, "%s Dataset path exists: %s\n\n", pass, abs)

	for _, split := range dataset.Splits {
		if result.SplitMissing(split) {
			fmt.Fprintf(c.out, "  %s Missing %s/ directory\n", fail, split)
			continue
		}
		fmt.Fprintf(c.out, "  %s/\n", split)
		for _, class := range dataset.Classes {
			count, ok := result.Count(split, class)
			if !ok {
				fmt.Fprintf(c.out, "    %s Missing %s/ directory\n", fail, class)
				continue
			}
			fmt.Fprintf(c.out, "    %s %s/: %d images\n", pass, class, count)
		}
	}

	fmt.Fprintf(c.out, "\n%s Total images found: %d\n", pass, result.Total)
	return result.Total > 0
}

// CheckConnection authenticates against Roboflow and reports the resolved
// workspace. Failure to resolve the configured project is only a warning,
// connectivity is already proven at that point; failure to authenticate
// fails the check.
func (c *Checker) CheckConnection(ctx context.Context) bool {
	c.header("TESTING ROBOFLOW CONNECTION")

	client, err := roboflow.NewClient(&roboflow.Config{
		APIKey:  c.cfg.APIKey,
		BaseURL: c.apiBase,
	})
	if err != nil {
		fmt.Fprintf(c.out, "%s API key not found in environment\n", fail)
		return false
	}

	workspace, err := client.Workspace(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "%s Connection failed: %v\n", fail, err)
		return false
	}

	fmt.Fprintf(c.out, "%s Successfully connected to Roboflow\n", pass)
	fmt.Fprintf(c.out, "  Workspace: %s\n", workspace.Name)

	if c.cfg.WorkspaceID != "" && c.cfg.ProjectID != "" {
		project, err := client.Project(ctx, c.cfg.WorkspaceID, c.cfg.ProjectID)
		if err != nil {
			fmt.Fprintf(c.out, "  %s Could not access project: %v\n", warn, err)
			return true
		}
		fmt.Fprintf(c.out, "  Project: %s\n", project.Name)
		fmt.Fprintf(c.out, "  Project Type: %s\n", project.Type)
	}

	return true
}
