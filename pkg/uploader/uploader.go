package uploader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/facemask-detection/roboflow-tools/pkg/config"
	"github.com/facemask-detection/roboflow-tools/pkg/dataset"
	apperrors "github.com/facemask-detection/roboflow-tools/pkg/errors"
	"github.com/facemask-detection/roboflow-tools/pkg/roboflow"
)

// cliCommand is the optional companion tool offered for installation when
// absent.
const cliCommand = "roboflow"

// ImageUploader uploads a single image into a split, tagged with tag names.
// *roboflow.Project satisfies it.
type ImageUploader interface {
	Upload(ctx context.Context, imagePath, split string, tags []string) error
}

// Service drives the upload pipeline. Each stage gates the next; the first
// failure aborts the run.
type Service struct {
	cfg *config.Config
	in  *bufio.Reader
	out io.Writer

	// apiBase overrides the Roboflow endpoint, for tests.
	apiBase string

	lookPath func(string) (string, error)
}

func New(cfg *config.Config) *Service {
	return NewWithIO(cfg, os.Stdin, os.Stdout)
}

func NewWithIO(cfg *config.Config, in io.Reader, out io.Writer) *Service {
	return &Service{
		cfg:      cfg,
		in:       bufio.NewReader(in),
		out:      out,
		lookPath: exec.LookPath,
	}
}

// Run executes the pipeline: config gate, CLI check, strict structure
// check, descriptor write, authentication, confirmation, upload loop.
func (s *Service) Run(ctx context.Context) error {
	s.banner()

	if err := s.checkConfig(); err != nil {
		return apperrors.NewStageError("configuration", err)
	}
	if err := s.ensureCLI(); err != nil {
		return apperrors.NewStageError("dependencies", err)
	}
	if err := s.verifyStructure(); err != nil {
		return apperrors.NewStageError("dataset", err)
	}
	if err := s.writeDescriptor(); err != nil {
		return apperrors.NewStageError("descriptor", err)
	}

	client, err := s.authenticate(ctx)
	if err != nil {
		return apperrors.NewStageError("authentication", err)
	}

	if err := s.confirmUpload(); err != nil {
		return apperrors.NewStageError("confirmation", err)
	}

	return s.upload(ctx, client)
}

func (s *Service) banner() {
	divider := strings.Repeat("=", 60)
	fmt.Fprintf(s.out, "%s\nROBOFLOW DATASET UPLOAD\nFace Mask Detection Dataset\n%s\n", divider, divider)
}

// checkConfig gates on the keys needed for any network activity. It runs
// before the dataset tree is touched at all.
func (s *Service) checkConfig() error {
	if s.cfg.APIKey == "" {
		fmt.Fprintln(s.out, "\nError: ROBOFLOW_API_KEY not configured")
		fmt.Fprintln(s.out, "Please add your API key to the .env file")
		return apperrors.ErrMissingConfig
	}
	if s.cfg.WorkspaceID == "" || s.cfg.ProjectID == "" {
		fmt.Fprintln(s.out, "\nError: missing workspace or project ID in configuration")
		return apperrors.ErrMissingConfig
	}

	fmt.Fprintln(s.out, "\nConfiguration loaded")
	fmt.Fprintf(s.out, "  Workspace: %s\n", s.cfg.WorkspaceID)
	fmt.Fprintf(s.out, "  Project: %s\n", s.cfg.ProjectID)
	return nil
}

// ensureCLI checks for the Roboflow CLI and offers to install it when
// missing. Declining the install aborts the run.
func (s *Service) ensureCLI() error {
	if _, err := s.lookPath(cliCommand); err == nil {
		fmt.Fprintln(s.out, "Roboflow CLI is installed")
		return nil
	}

	fmt.Fprintln(s.out, "Roboflow CLI is not installed")
	yes, err := s.prompt("\nWould you like to install it now? (y/n): ")
	if err != nil {
		return err
	}
	if !yes {
		fmt.Fprintln(s.out, "\nPlease install it manually: pip install roboflow")
		return apperrors.ErrDependencyMissing
	}
	return s.installCLI()
}

func (s *Service) installCLI() error {
	fmt.Fprintln(s.out, "\nInstalling roboflow...")
	cmd := exec.Command("pip", "install", "roboflow")
	cmd.Stdout = s.out
	cmd.Stderr = s.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(s.out, "\nPlease install it manually: pip install roboflow")
		return fmt.Errorf("installing roboflow: %w", err)
	}
	fmt.Fprintln(s.out, "Roboflow installed successfully")
	return nil
}

// verifyStructure requires the complete split/class tree. Unlike the setup
// checker, any missing directory is fatal here.
func (s *Service) verifyStructure() error {
	fmt.Fprintln(s.out, "\nVerifying dataset structure...")

	result, err := dataset.Scan(s.cfg.DatasetDir())
	if err != nil {
		return err
	}

	for _, split := range dataset.Splits {
		for _, class := range dataset.Classes {
			if count, ok := result.Count(split, class); ok {
				fmt.Fprintf(s.out, "  %s/%s: %d images\n", split, class, count)
			}
		}
	}

	if !result.Valid() {
		fmt.Fprintln(s.out, "\nDataset structure issues found:")
		for _, missing := range result.Missing {
			fmt.Fprintf(s.out, "  - Missing %s directory\n", missing)
		}
		return apperrors.ErrDatasetInvalid
	}

	fmt.Fprintln(s.out, "Dataset structure is valid")
	return nil
}

func (s *Service) writeDescriptor() error {
	fmt.Fprintln(s.out, "\nCreating data.yaml file...")
	path, err := dataset.WriteDescriptor(s.cfg.DatasetDir())
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created data.yaml at: %s\n", path)
	return nil
}

// authenticate proves the API key resolves to a workspace. Failure here is
// fatal, unlike the advisory project lookup in the setup checker.
func (s *Service) authenticate(ctx context.Context) (*roboflow.Client, error) {
	fmt.Fprintln(s.out, "\nAuthenticating with Roboflow...")

	client, err := roboflow.NewClient(&roboflow.Config{
		APIKey:  s.cfg.APIKey,
		BaseURL: s.apiBase,
	})
	if err != nil {
		return nil, err
	}

	workspace, err := client.Workspace(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAuthFailed, err)
	}

	fmt.Fprintf(s.out, "Authenticated with Roboflow as: %s\n", workspace.Name)
	return client, nil
}

func (s *Service) confirmUpload() error {
	abs, _ := filepath.Abs(s.cfg.DatasetDir())
	fmt.Fprintln(s.out, "\nReady to upload dataset to:")
	fmt.Fprintf(s.out, "  Workspace: %s\n", s.cfg.WorkspaceID)
	fmt.Fprintf(s.out, "  Project: %s\n", s.cfg.ProjectID)
	fmt.Fprintf(s.out, "  Dataset path: %s\n", abs)

	yes, err := s.prompt("\nProceed with upload? (y/n): ")
	if err != nil {
		return err
	}
	if !yes {
		fmt.Fprintln(s.out, "\nUpload cancelled.")
		return apperrors.ErrCancelled
	}
	return nil
}

func (s *Service) prompt(question string) (bool, error) {
	fmt.Fprint(s.out, question)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("reading response: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

func (s *Service) upload(ctx context.Context, client *roboflow.Client) error {
	divider := strings.Repeat("=", 60)
	fmt.Fprintf(s.out, "\n%s\nUPLOADING DATASET TO ROBOFLOW\n%s\n", divider, divider)

	project, err := client.Project(ctx, s.cfg.WorkspaceID, s.cfg.ProjectID)
	if err != nil {
		return apperrors.NewStageError("upload", err)
	}

	abs, _ := filepath.Abs(s.cfg.DatasetDir())
	fmt.Fprintf(s.out, "\nProject: %s\n", project.Name)
	fmt.Fprintf(s.out, "Dataset path: %s\n", abs)
	fmt.Fprintln(s.out, "\nUploading images...")
	fmt.Fprintln(s.out, "This may take a while depending on your dataset size.")

	total, err := UploadImages(ctx, project, s.cfg.DatasetDir(), s.out)
	if err != nil {
		return apperrors.NewStageError("upload", err)
	}

	fmt.Fprintf(s.out, "\n%s\nUPLOAD COMPLETE\n  Total images uploaded: %d\n%s\n", divider, total, divider)
	return nil
}

// UploadImages walks the split/class tree under root and uploads each
// image individually, tagged with its class and assigned to its split.
// Per-image failures are logged and skipped; the returned count includes
// only successful uploads.
func UploadImages(ctx context.Context, up ImageUploader, root string, out io.Writer) (int, error) {
	total := 0
	divider := strings.Repeat("=", 50)

	for _, split := range dataset.Splits {
		fmt.Fprintf(out, "\n%s\nUploading %s split...\n%s\n", divider, split, divider)

		for _, class := range dataset.Classes {
			classDir := filepath.Join(root, split, class)
			if _, err := os.Stat(classDir); err != nil {
				fmt.Fprintf(out, "  Skipping %s/%s - directory not found\n", split, class)
				continue
			}

			images, err := dataset.ListImages(classDir)
			if err != nil {
				return total, err
			}

			fmt.Fprintf(out, "\n  Uploading %d images from %s/%s...\n", len(images), split, class)

			for idx, imagePath := range images {
				if err := up.Upload(ctx, imagePath, split, []string{class}); err != nil {
					log.WithError(err).WithFields(log.Fields{
						"image": filepath.Base(imagePath),
						"split": split,
						"class": class,
					}).Error("Failed to upload image")
				} else {
					total++
				}

				if (idx+1)%10 == 0 || idx+1 == len(images) {
					fmt.Fprintf(out, "    Progress: %d/%d images uploaded\n", idx+1, len(images))
				}
			}
		}
	}

	return total, nil
}
