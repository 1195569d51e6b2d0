package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/patchpick/patchpick/internal/config"
	"github.com/patchpick/patchpick/internal/loader"
	"github.com/patchpick/patchpick/internal/logging"
	"github.com/patchpick/patchpick/internal/patch"
	"github.com/patchpick/patchpick/internal/render"
	"github.com/patchpick/patchpick/internal/session"
	"github.com/patchpick/patchpick/internal/tui"
	"github.com/patchpick/patchpick/internal/ui"
)

// Version info set by ldflags at build time
var (
	version    = "dev"
	commitHash = "dev"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config file")
	root := flag.String("root", "", "root directory diff paths resolve against (overrides config)")
	diffPath := flag.String("diff", "-", "unified diff file to read ('-' for stdin)")
	filePath := flag.String("file", "", "target file (overrides the path from diff headers)")
	logFile := flag.String("log", "", "log file path (overrides config; empty keeps config value)")
	listOnly := flag.Bool("list", false, "list detected chunks and exit")
	applyAll := flag.Bool("apply-all", false, "apply every chunk in order without prompting")
	walk := flag.Bool("walk", false, "walk chunks one by one with a y/n prompt instead of the TUI")
	write := flag.Bool("write", false, "write the modified buffer back to the target file on exit")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	showVersion := flag.Bool("version", false, "show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s-%s\n", version, commitHash)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *noColor || !cfg.UI.Color {
		color.NoColor = true
	}

	rootChanged := false
	if *root != "" {
		absRoot, err := filepath.Abs(*root)
		if err != nil {
			log.Fatalf("Failed to resolve root: %v", err)
		}
		rootChanged = absRoot != cfg.Workspace.Root
		cfg.Workspace.Root = absRoot
	}
	if cfg.Workspace.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			log.Fatalf("Failed to get working directory: %v", err)
		}
		cfg.Workspace.Root = cwd
	}
	if *logFile != "" {
		cfg.Log.Path = *logFile
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	diffText, err := readDiff(*diffPath)
	if err != nil {
		log.Fatalf("Failed to read diff: %v", err)
	}

	target := *filePath
	if target == "" {
		target = patch.TargetPath(diffText)
	}
	if target == "" {
		log.Fatal("No target file: diff has no usable ---/+++ headers, pass -file")
	}

	fullPath, err := loader.Resolve(cfg.Workspace.Root, target)
	if err != nil {
		log.Fatalf("Failed to resolve target: %v", err)
	}
	buffer, err := loader.LoadLines(fullPath)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", target, err)
	}

	engine := patch.New(cfg.EngineOptions())
	sess := session.New(engine, logger, target, buffer, diffText)

	for _, w := range sess.Warnings() {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("warning:"), w)
	}
	if len(sess.Chunks()) == 0 {
		log.Fatal("No chunks found in diff")
	}

	switch {
	case *listOnly:
		listChunks(sess)
		return
	case *applyAll:
		runApplyAll(sess)
	case *walk:
		runWalk(sess)
	default:
		if err := tui.Run(sess); err != nil {
			log.Fatalf("UI error: %v", err)
		}
	}

	if err := finish(sess, fullPath, *write); err != nil {
		log.Fatalf("%v", err)
	}

	// Remember the chosen root for the next run.
	if rootChanged {
		if err := cfg.Save(*configPath); err != nil {
			logger.Error("persist config", err)
		}
	}
}

// readDiff pulls the diff text from a file, a pipe, or, when stdin is a
// terminal, a full-screen paste prompt.
func readDiff(path string) (string, error) {
	if path != "-" {
		data, err := os.ReadFile(path)
		return string(data), err
	}
	if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
		return tui.ReadDiff()
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

func listChunks(sess *session.Session) {
	fmt.Printf("Detected %d chunk(s) in diff for %s\n", len(sess.Chunks()), sess.Path())
	for _, c := range sess.Chunks() {
		fmt.Println(ui.ChunkSummary(c))
	}
}

func runApplyAll(sess *session.Session) {
	for i := range sess.Chunks() {
		_, err := sess.Apply(i)
		_, note := sess.State(i)
		switch {
		case err == nil:
			fmt.Fprintf(os.Stderr, "%s chunk #%d %s\n", color.GreenString("ok:"), i+1, note)
		case patch.IsSkip(err):
			fmt.Fprintf(os.Stderr, "%s chunk #%d already applied\n", color.YellowString("skip:"), i+1)
		default:
			fmt.Fprintf(os.Stderr, "%s chunk #%d: %v\n", color.RedString("fail:"), i+1, err)
		}
	}
}

func runWalk(sess *session.Session) {
	for i, c := range sess.Chunks() {
		fmt.Fprintln(os.Stderr, ui.ChunkSummary(c))

		preview, err := sess.Preview(i)
		switch {
		case err == nil:
			fmt.Fprintln(os.Stderr, render.Colorize(preview))
		case patch.IsSkip(err):
			fmt.Fprintf(os.Stderr, "%s\n", color.YellowString("already applied, skipping"))
			continue
		default:
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("cannot apply:"), err)
			continue
		}

		answer, err := ui.Confirm(fmt.Sprintf("Apply chunk #%d?", i+1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "prompt error: %v\n", err)
			return
		}
		switch answer {
		case ui.Quit:
			return
		case ui.No:
			continue
		}

		if _, err := sess.Apply(i); err != nil {
			fmt.Fprintf(os.Stderr, "%s chunk #%d: %v\n", color.RedString("fail:"), i+1, err)
		}
	}
}

// finish either writes the buffer back to disk (only ever on explicit
// request) or prints the accumulated diff to stdout.
func finish(sess *session.Session, fullPath string, write bool) error {
	if !sess.Dirty() {
		fmt.Fprintln(os.Stderr, "No chunks applied, buffer unchanged")
		return nil
	}

	if write {
		if err := loader.SaveLines(fullPath, sess.Buffer()); err != nil {
			return fmt.Errorf("write %s: %w", fullPath, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", fullPath)
		return nil
	}

	diff, err := sess.FullDiff()
	if err != nil {
		return fmt.Errorf("render diff: %w", err)
	}
	fmt.Print(render.Colorize(diff))
	return nil
}
