// Command pastelines resolves a shareable link against local files and prints
// the selected ranges without starting the viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"pastelines/internal/config"
	"pastelines/internal/eventbus"
	"pastelines/internal/paste"
	"pastelines/internal/session"
)

func main() {
	// Logging stays quiet unless asked for; stdout carries the result
	log.SetOutput(io.Discard)
	if path := os.Getenv("PASTELINES_LOG"); path != "" {
		if logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); err == nil {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pastelines", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rawLink := fs.String("link", "", "Shareable link or lines value to resolve")
	configPath := fs.String("config", "", "Path to a config file")
	showLink := fs.Bool("print-link", false, "Print the canonical link after the ranges")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Usage: pastelines -link URL file... (use - for stdin)")
		return 2
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.NewConfigServiceAt(*configPath).Load()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	p, err := paste.Load(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	sess := session.New(cfg, eventbus.New(), nil)
	defer sess.Close()

	result, err := sess.Open(p, *rawLink)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	for _, s := range result.Skipped {
		fmt.Fprintf(stderr, "skipped %q at offset %d: %s\n", s.Text, s.Offset, s.Reason)
	}

	for _, ex := range sess.Excerpts() {
		fmt.Fprintln(stdout, ex.Header())
		for _, line := range ex.Lines {
			fmt.Fprintln(stdout, line)
		}
	}
	if *showLink {
		fmt.Fprintln(stdout, sess.Link())
	}
	return 0
}
