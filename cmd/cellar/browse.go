package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/internal/shell"
)

var (
	browseFlags queryFlags
	browseView  string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the collection interactively",
	Long: `Browse opens an interactive session over the collection. Filters, sort
order and layout change as you type commands; type help for the list.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := browseFlags.query()
		if err != nil {
			fatal("Invalid query", err)
		}
		ctx := cmd.Context()
		svc := openService(ctx)

		layout := cfg.View.Layout
		if browseView != "" {
			layout = browseView
		}
		r, err := newRenderer(ctx, svc, layout)
		if err != nil {
			fatal("Invalid view", err)
		}

		_, loadErr := svc.Load(ctx)
		sess := shell.New(ctx, svc, shell.Config{Renderer: r, Out: os.Stdout, Query: q})
		if loadErr != nil {
			sess.MarkLoadFailed()
		}

		if err := interact(sess, historyFile()); err != nil {
			fatal("Error reading input", err)
		}
	},
}

// prompter is the part of liner.State the read loop uses.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// interact runs the liner session and restores the terminal before
// returning, including on a read error.
func interact(sess *shell.Session, history string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(shell.Complete)

	if f, err := os.Open(history); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("Type 'help' for available commands.")
	_, _ = sess.Exec("ls")
	err := readLoop(line, sess, os.Stderr)

	if history != "" {
		if f, ferr := os.Create(history); ferr == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return err
}

// readLoop feeds input lines to sess until quit, Ctrl-C or EOF.
// Command errors are reported to errOut; read errors end the loop.
func readLoop(p prompter, sess *shell.Session, errOut io.Writer) error {
	for {
		input, err := p.Prompt(sess.Prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		p.AppendHistory(input)

		quit, err := sess.Exec(input)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
		}
		if quit {
			return nil
		}
	}
}

// historyFile lives in the storage directory; ephemeral runs keep none.
func historyFile() string {
	if ephemeral {
		return ""
	}
	if info, err := os.Stat(cfg.Storage.Dir); err != nil || !info.IsDir() {
		return ""
	}
	return filepath.Join(cfg.Storage.Dir, "history")
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseFlags.register(browseCmd)
	browseCmd.Flags().StringVar(&browseView, "view", "", "Layout: grid or list")
}
