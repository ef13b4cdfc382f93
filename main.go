package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/goyan/diskdash/internal/sizer"
	"github.com/goyan/diskdash/internal/ui"
)

var version = "dev"

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: diskdash [options]\n\n")
		fmt.Fprintf(os.Stderr, "diskdash browses mounted volumes and directories, scoring every entry\n")
		fmt.Fprintf(os.Stderr, "by how safe it is to delete and sizing directories in the background.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  diskdash                 # start on the disk list\n")
		fmt.Fprintf(os.Stderr, "  diskdash -p ~/Downloads  # start browsing a directory\n")
	}

	pathFlag := pflag.StringP("path", "p", "", "Start browsing at the given directory instead of the disk list")
	depthFlag := pflag.IntP("depth", "d", sizer.DefaultMaxDepth, "Recursion depth cap for directory size aggregation")
	debugFlag := pflag.Bool("debug", false, "Write debug logs to diskdash.log")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}
	if *versionFlag {
		fmt.Printf("diskdash %s\n", version)
		return
	}

	if *debugFlag {
		f, err := tea.LogToFile("diskdash.log", "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	startPath := ""
	if *pathFlag != "" {
		abs, err := filepath.Abs(*pathFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot resolve %q: %v\n", *pathFlag, err)
			os.Exit(1)
		}
		startPath = abs
	}

	p := tea.NewProgram(ui.InitialModel(startPath, *depthFlag), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "diskdash error: %v\n", err)
		os.Exit(1)
	}
}
