package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage personal notes",
}

var noteGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print the note for a wine",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(cmd.Context())
		note, ok := svc.Notes().Get(args[0])
		if !ok {
			fatal("Error reading note", fmt.Errorf("no note for %q", args[0]))
		}
		fmt.Println(note)
	},
}

var noteSetCmd = &cobra.Command{
	Use:   "set <name> <text...>",
	Short: "Set the note for a wine (empty text removes it)",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(cmd.Context())
		text := strings.Join(args[1:], " ")
		if err := svc.SaveNote(cmd.Context(), args[0], text); err != nil {
			fatal("Error saving note", err)
		}
		if strings.TrimSpace(text) == "" {
			fmt.Printf("Note removed for %s\n", args[0])
			return
		}
		fmt.Printf("Note saved for %s\n", args[0])
	},
}

var noteRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Remove the note for a wine",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(cmd.Context())
		if err := svc.SaveNote(cmd.Context(), args[0], ""); err != nil {
			fatal("Error removing note", err)
		}
		fmt.Printf("Note removed for %s\n", args[0])
	},
}

var noteLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List wines that have a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(cmd.Context())
		for _, name := range svc.Notes().Names() {
			note, _ := svc.Notes().Get(name)
			fmt.Printf("%s: %s\n", name, note)
		}
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteGetCmd, noteSetCmd, noteRmCmd, noteLsCmd)
}
