package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/textfit/textfit"
	"github.com/textfit/textfit/fit"
	"github.com/textfit/textfit/measure"
	termtext "github.com/textfit/textfit/term"
	"github.com/textfit/textfit/tui"
)

func main() {
	var (
		text        = flag.String("text", "", "Text to fit")
		configFile  = flag.String("config", "", "Path to TOML config file")
		mode        = flag.String("mode", "multi", "Fit mode: multi or single")
		minSize     = flag.Int("min", 0, "Minimum scale (0 for default)")
		maxSize     = flag.Int("max", 0, "Maximum scale (0 for default)")
		checkHeight = flag.Bool("check-height", false, "Also require the height to fit in single mode")
		width       = flag.Int("width", 0, "Container width in cells (0 for terminal width)")
		height      = flag.Int("height", 0, "Container height in cells (0 for terminal height)")
		padding     = flag.Int("padding", 0, "Container padding in cells")
		interactive = flag.Bool("i", false, "Interactive mode with live editing")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		fit.SetLogger(logger.Named("fit"))
		tui.SetLogger(logger.Named("tui"))
	}

	cfg := defaultConfig()
	if *configFile != "" {
		loaded, err := loadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.applyFlags(flag.CommandLine, *text, *mode, *minSize, *maxSize, *checkHeight, *width, *height, *padding)

	if cfg.Text == "" {
		fmt.Fprintln(os.Stderr, "Usage: fitdemo -text <string> [-mode multi|single] [-width N] [-height N]")
		fmt.Fprintln(os.Stderr, "       fitdemo -config <file.toml>")
		fmt.Fprintln(os.Stderr, "       fitdemo -text <string> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		tw, th, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return fmt.Errorf("detect terminal size: %w (use -width and -height)", err)
		}
		if w == 0 {
			w = tw
		}
		if h == 0 {
			h = th - 1
		}
	}

	box := termtext.Box{
		Style:  lipgloss.NewStyle().Padding(cfg.Padding),
		Width:  w,
		Height: h,
	}
	txt := termtext.NewText(cfg.Text)
	if cfg.fitMode() == fit.ModeMulti {
		txt.SetWrapWidth(int(measure.InnerWidth(box)))
	}

	size, ok := textfit.Fit(cfg.fitConfig(), box, txt)
	if !ok {
		return fmt.Errorf("no fit for a %dx%d container", w, h)
	}

	fmt.Println(box.Render(txt.Render()))
	fmt.Printf("Fitted scale: %d (container %dx%d, mode %s)\n", size, w, h, cfg.fitMode())
	return nil
}
