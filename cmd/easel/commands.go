package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/easelart/easel/internal/config"
	"github.com/easelart/easel/internal/gallery"
	"github.com/easelart/easel/internal/generate"
	"github.com/easelart/easel/internal/logging"
	"github.com/easelart/easel/internal/settings"
	"github.com/easelart/easel/internal/store"
	"github.com/easelart/easel/internal/theme"
	"github.com/easelart/easel/internal/tui"
	"github.com/easelart/easel/internal/ui"
	"github.com/easelart/easel/internal/urls"
)

// Command flags
var (
	apiToken    string
	endpointURL string

	negativePrompt string
	aspectRatio    string
	stylePreset    string
	qualityLevel   string
	stepCount      int
	guidanceScale  float64
	outputPath     string
	noSave         bool

	forceClear   bool
	exportOutput string
)

func init() {
	// Common flags for all commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "API token (overrides environment and config file)")
	rootCmd.PersistentFlags().StringVar(&endpointURL, "endpoint", "", "Inference endpoint URL (overrides environment and config file)")

	// Add subcommands directly to root
	rootCmd.AddCommand(studioCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(configCmd)
}

// services bundles the wired application dependencies shared by the
// studio and the one-shot commands.
type services struct {
	store   *store.Store
	client  *generate.Client
	gallery *gallery.Manager
	theme   *theme.Controller
}

// openServices wires the data store, generation client, gallery manager
// and theme controller used by every command.
func openServices() (*services, error) {
	// Initialize logging from environment variable (silent by default)
	// Set EASEL_LOG_LEVEL=debug to see detailed logs
	if err := logging.InitializeFromEnv(); err != nil {
		// Ignore error, GetLogger will create fallback logger
		_ = err
	}

	st, err := store.OpenDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	token, _ := config.ResolveToken(apiToken)

	var client *generate.Client
	if endpoint := config.ResolveEndpoint(endpointURL); endpoint != "" {
		client = generate.NewClientWithURL(endpoint, token, st.Blobs)
	} else {
		client = generate.NewClient(token, st.Blobs)
	}

	return &services{
		store:   st,
		client:  client,
		gallery: gallery.NewManager(st.KV.Value(gallery.StateKey), st.Blobs),
		theme:   theme.NewController(st.KV.Value(theme.StateKey)),
	}, nil
}

// studioCmd launches the interactive studio TUI
var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Launch the interactive studio",
	Long: `Launch the interactive studio TUI.

The studio provides a full-screen interface for:
- Composing prompts and negative prompts
- Adjusting aspect ratio, style preset, quality, steps and guidance
- Generating images with a live spinner and cancellation
- Browsing, exporting and deleting gallery records
- Toggling between dark and light themes

This is the recommended way to use easel for most users.`,
	Example: `  # Launch the studio
  easel studio
  # Or simply (studio is default):
  easel

  # Launch against a self-hosted endpoint
  easel studio --endpoint http://localhost:8080/models/sdxl`,
	RunE: runStudio,
}

func runStudio(cmd *cobra.Command, args []string) error {
	svc, err := openServices()
	if err != nil {
		return err
	}

	return tui.Run(tui.Deps{
		Client:  svc.client,
		Gallery: svc.gallery,
		Blobs:   svc.store.Blobs,
		Theme:   svc.theme,
	})
}

// generateCmd performs a one-shot generation without the studio
var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate an image from a prompt",
	Long: `Generate an image from a text prompt without launching the studio.

The prompt is sent to the hosted inference endpoint together with the
generation settings. The result is recorded in the rolling gallery
(newest first, the oldest of twelve evicted) unless --no-save is given,
and can additionally be copied to a file with --output.

Cold models can take up to a minute to respond on the free tier; the
request timeout is two minutes.`,
	Example: `  # Generate with default settings
  easel generate "a lighthouse at dusk, dramatic sky"

  # Widescreen anime style
  easel generate "a mountain village in spring" --aspect 16:9 --style anime

  # High quality with explicit sampler settings
  easel generate "studio portrait of a red fox" --quality hd --steps 40 --guidance 9

  # Keep a copy next to the shell without touching the gallery
  easel generate "blueprint of a submarine" --no-save -o submarine.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&negativePrompt, "negative", "", "Negative prompt (what the image should avoid)")
	generateCmd.Flags().StringVar(&aspectRatio, "aspect", string(settings.DefaultAspectRatio), "Aspect ratio (1:1, 16:9, 9:16, 4:3, 3:4, 3:2, 2:3)")
	generateCmd.Flags().StringVar(&stylePreset, "style", string(settings.DefaultStylePreset), "Style preset (photographic, digital-art, anime, cinematic, fantasy, neon-punk, abstract)")
	generateCmd.Flags().StringVar(&qualityLevel, "quality", string(settings.DefaultQuality), "Quality tier (standard, hd)")
	generateCmd.Flags().IntVar(&stepCount, "steps", settings.DefaultSteps, "Inference steps (20-50 in steps of 5)")
	generateCmd.Flags().Float64Var(&guidanceScale, "guidance", settings.DefaultGuidance, "Guidance scale (1.0-20.0 in steps of 0.5)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also copy the image to this file")
	generateCmd.Flags().BoolVar(&noSave, "no-save", false, "Skip recording the image in the gallery")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := settingsFromFlags()
	if err != nil {
		return err
	}

	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	if noSave && outputPath == "" {
		ui.PrintFailure("Invalid arguments", fmt.Errorf("--no-save without --output would discard the image"), []string{
			"Add --output FILE to keep a copy outside the gallery",
			"Or drop --no-save to record it in the gallery",
		})
		return fmt.Errorf("--no-save requires --output")
	}

	svc, err := openServices()
	if err != nil {
		ui.PrintFailure("Image generation failed", err, []string{
			"Check that the data directory is writable",
		})
		return err
	}

	prompt := strings.Join(args, " ")

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Image Generation",
		Command: "easel generate",
		Params: []ui.Param{
			{Key: "Prompt", Value: gallery.TruncatePrompt(prompt, 48)},
			{Key: "Style", Value: s.StylePreset.Label()},
			{Key: "Aspect", Value: string(s.AspectRatio)},
			{Key: "Quality", Value: fmt.Sprintf("%s, %d steps, guidance %.1f", s.Quality.Label(), s.Steps, s.Guidance)},
		},
		TotalSteps: 3,
		StepNames:  []string{"Build request", "Generate image", "Save to gallery"},
		TroubleshootFunc: func(err error) []string {
			return strings.Split(generate.GetTroubleshootingHint(err), "\n")
		},
	})

	ctx := context.Background()
	_, err = runner.RunWithResult(ctx, func(onStep ui.StepCallback) ([]ui.Param, error) {
		onStep(1, "", ui.StepRunning, "")
		transmitted := generate.BuildPrompt(prompt, s.StylePreset)
		onStep(1, "", ui.StepComplete, fmt.Sprintf("%d chars", len(transmitted)))

		onStep(2, "", ui.StepRunning, "cold models can take up to a minute")
		start := time.Now()
		res, err := svc.client.Generate(ctx, prompt, negativePrompt, s)
		if err != nil {
			onStep(2, "", ui.StepFailed, "")
			return nil, err
		}
		onStep(2, "", ui.StepComplete, time.Since(start).Round(100*time.Millisecond).String())

		var details []ui.Param

		if noSave {
			onStep(3, "", ui.StepSkipped, "--no-save")
		} else {
			onStep(3, "", ui.StepRunning, "")
			rec, err := svc.gallery.Add(res.Handle, prompt, s.AspectRatio)
			if err != nil {
				onStep(3, "", ui.StepFailed, "")
				return nil, fmt.Errorf("image generated but gallery save failed: %w", err)
			}
			onStep(3, "", ui.StepComplete, "")
			details = append(details, ui.Param{Key: "Record", Value: rec.ShortID()})
		}

		if outputPath != "" {
			if err := exportResource(svc.store.Blobs, res.Handle, outputPath); err != nil {
				return details, fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			details = append(details, ui.Param{Key: "Copy", Value: outputPath})
		}

		if noSave {
			// Nothing references the blob once the copy is written
			_ = svc.store.Blobs.Release(res.Handle)
		} else if path, err := svc.store.Blobs.Path(res.Handle); err == nil {
			details = append(details, ui.Param{Key: "File", Value: path})
		}

		details = append(details, ui.Param{Key: "Type", Value: res.ContentType})
		details = append(details, ui.Param{Key: "Size", Value: formatBytes(res.Size)})

		return details, nil
	})
	return err
}

// settingsFromFlags builds generation settings from the command line,
// rejecting out-of-domain values rather than snapping them.
func settingsFromFlags() (settings.Settings, error) {
	s := settings.Default()

	a, err := settings.ParseAspectRatio(aspectRatio)
	if err != nil {
		return s, err
	}
	s.AspectRatio = a

	p, err := settings.ParseStylePreset(stylePreset)
	if err != nil {
		return s, err
	}
	s.StylePreset = p

	q, err := settings.ParseQuality(qualityLevel)
	if err != nil {
		return s, err
	}
	s.Quality = q

	if err := settings.ValidateSteps(stepCount); err != nil {
		return s, err
	}
	s.Steps = stepCount

	if err := settings.ValidateGuidance(guidanceScale); err != nil {
		return s, err
	}
	s.Guidance = guidanceScale

	return s, nil
}

// galleryCmd groups the gallery management subcommands
var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Manage the rolling image gallery",
	Long: `Inspect and manage the rolling gallery of recent generations.

The gallery keeps the twelve most recent images; generating a thirteenth
evicts the oldest record and deletes its image file. Subcommands accept
a full record id or a unique prefix of one.`,
}

func init() {
	galleryCmd.AddCommand(galleryListCmd)
	galleryCmd.AddCommand(galleryShowCmd)
	galleryCmd.AddCommand(galleryDeleteCmd)
	galleryCmd.AddCommand(galleryClearCmd)
	galleryCmd.AddCommand(galleryExportCmd)
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gallery records",
	Long:  `List the gallery records, newest first.`,
	Example: `  # List all records
  easel gallery list`,
	RunE: runGalleryList,
}

func runGalleryList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	svc, err := openServices()
	if err != nil {
		return err
	}

	fmt.Println(gallery.FormatList(svc.gallery.Records()))
	return nil
}

var galleryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show full details of a record",
	Long: `Display the full details of a gallery record, including the path of
the backing image file.`,
	Example: `  # Show by id prefix
  easel gallery show 01924b3c`,
	Args: cobra.ExactArgs(1),
	RunE: runGalleryShow,
}

func runGalleryShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	svc, err := openServices()
	if err != nil {
		return err
	}

	rec, ok := svc.gallery.Find(args[0])
	if !ok {
		return fmt.Errorf("no gallery record matches %q", args[0])
	}

	imagePath := ""
	if p, err := svc.store.Blobs.Path(rec.Handle); err == nil {
		imagePath = p
	}

	fmt.Println(rec.FormatDetailed(imagePath))
	return nil
}

var galleryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record and its image",
	Long: `Delete a gallery record and remove its image file from disk.

Deleting an id that does not exist is not an error; the gallery is
simply left unchanged.`,
	Example: `  # Delete by id prefix
  easel gallery delete 01924b3c`,
	Args: cobra.ExactArgs(1),
	RunE: runGalleryDelete,
}

func runGalleryDelete(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	svc, err := openServices()
	if err != nil {
		return err
	}

	rec, ok := svc.gallery.Find(args[0])
	if !ok {
		fmt.Printf("No gallery record matches %q; nothing deleted.\n", args[0])
		return nil
	}

	if err := svc.gallery.Delete(rec.ID); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	fmt.Printf("✓ Deleted %s (%s)\n", rec.ShortID(), gallery.TruncatePrompt(rec.Prompt, 40))
	return nil
}

var galleryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all records and images",
	Long: `Delete every gallery record and remove all image files from disk.

Without --force, a confirmation prompt is shown first.`,
	Example: `  # Clear with confirmation prompt
  easel gallery clear

  # Clear without prompting (for scripts)
  easel gallery clear --force`,
	RunE: runGalleryClear,
}

func init() {
	galleryClearCmd.Flags().BoolVar(&forceClear, "force", false, "Skip the confirmation prompt")
}

func runGalleryClear(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	svc, err := openServices()
	if err != nil {
		return err
	}

	count := svc.gallery.Len()
	if count == 0 {
		fmt.Println("The gallery is already empty.")
		return nil
	}

	if !forceClear && !ui.ClearGalleryConfirmation(count) {
		return nil // User cancelled
	}

	if err := svc.gallery.Clear(); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	fmt.Printf("✓ Cleared %d record(s)\n", count)
	return nil
}

var galleryExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Copy a record's image to a file",
	Long: `Copy the image behind a gallery record to a file outside the gallery.

The record itself is left in place; export is a copy, not a move.`,
	Example: `  # Export next to the shell with a generated name
  easel gallery export 01924b3c

  # Export to an explicit path
  easel gallery export 01924b3c -o ~/Pictures/lighthouse.png`,
	Args: cobra.ExactArgs(1),
	RunE: runGalleryExport,
}

func init() {
	galleryExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Destination file (default: easel-<id>.<ext> in the current directory)")
}

func runGalleryExport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	svc, err := openServices()
	if err != nil {
		return err
	}

	rec, ok := svc.gallery.Find(args[0])
	if !ok {
		return fmt.Errorf("no gallery record matches %q", args[0])
	}

	dest := exportOutput
	if dest == "" {
		dest = "easel-" + rec.ShortID() + filepath.Ext(rec.Handle)
	}

	if err := exportResource(svc.store.Blobs, rec.Handle, dest); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Exported %s to %s\n", rec.ShortID(), dest)
	return nil
}

// configCmd groups the configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage easel configuration",
	Long: `Manage the easel configuration file.

The configuration file stores the Hugging Face API token and an optional
endpoint override. Environment variables take precedence: EASEL_HF_TOKEN
(or HF_TOKEN) for the token and EASEL_ENDPOINT for the endpoint.`,
}

func init() {
	configCmd.AddCommand(configSetTokenCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetEndpointCmd)
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store the API token in the config file",
	Long: `Store the Hugging Face API token in the configuration file.

When no token argument is given, the token is read from the terminal
with echo disabled, so it does not land in shell history.

Create a token (read access is enough) at:
  ` + urls.TokenSettings,
	Example: `  # Prompt for the token with hidden input (recommended)
  easel config set-token

  # Pass the token directly (lands in shell history)
  easel config set-token hf_xxxx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigSetToken,
}

func runConfigSetToken(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var token string
	if len(args) == 1 {
		token = strings.TrimSpace(args[0])
	} else {
		fmt.Print("Hugging Face API token (input hidden): ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}

	if token == "" || token == config.TokenPlaceholder {
		return fmt.Errorf("no usable token provided")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Token = token
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	path, _ := config.GetConfigPath()
	ui.PrintSuccess("Token saved", []ui.Param{
		{Key: "Token", Value: config.MaskToken(token)},
		{Key: "Config", Value: path},
	})
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Display the effective configuration after resolving flags,
environment variables and the config file. The token is masked.`,
	Example: `  easel config show`,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	// Resolution logs warnings for broken config files at debug levels
	if err := logging.InitializeFromEnv(); err != nil {
		_ = err
	}

	token, source := config.ResolveToken(apiToken)
	endpoint := config.ResolveEndpoint(endpointURL)
	if endpoint == "" {
		endpoint = generate.DefaultEndpoint + " (default)"
	}

	params := []ui.Param{
		{Key: "Token", Value: config.MaskToken(token)},
	}
	if token != "" {
		params = append(params, ui.Param{Key: "Source", Value: source})
	}
	params = append(params, ui.Param{Key: "Endpoint", Value: endpoint})

	if path, err := config.GetConfigPath(); err == nil {
		params = append(params, ui.Param{Key: "Config", Value: path})
	}
	if root, err := store.DefaultRoot(); err == nil {
		params = append(params, ui.Param{Key: "Data", Value: root})
	}

	ui.PrintCommandHeader("Configuration", "easel config show", params)
	return nil
}

var configSetEndpointCmd = &cobra.Command{
	Use:   "set-endpoint <url>",
	Short: "Store an endpoint override in the config file",
	Long: `Store an inference endpoint override in the configuration file.

The URL must be the full model route. Pass "default" to clear the
override and return to the built-in endpoint.`,
	Example: `  # Point easel at a different hosted model
  easel config set-endpoint https://api-inference.huggingface.co/models/black-forest-labs/FLUX.1-schnell

  # Clear the override
  easel config set-endpoint default`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSetEndpoint,
}

func runConfigSetEndpoint(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	endpoint := strings.TrimSpace(args[0])
	if endpoint == "default" {
		endpoint = ""
	} else if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return fmt.Errorf("endpoint must be an http(s) URL, got %q", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Endpoint = endpoint
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	shown := endpoint
	if shown == "" {
		shown = generate.DefaultEndpoint + " (default)"
	}
	ui.PrintSuccess("Endpoint saved", []ui.Param{
		{Key: "Endpoint", Value: shown},
	})
	return nil
}

// exportResource copies a stored image to a user-supplied path
func exportResource(blobs *store.BlobStore, handle, dest string) error {
	data, err := blobs.Read(handle)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}

// formatBytes renders a byte count with binary units for display
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
