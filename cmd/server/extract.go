package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/atsmatch/pkg/resume"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the text extracted from a resume file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		// исходный файл не удаляется: читаем его парсером напрямую
		ext := resume.NewParser().ExtractFile(path, resume.FormatFromName(path))
		fmt.Fprintf(cmd.ErrOrStderr(), "format=%s status=%s\n", ext.Format, ext.Status)
		if ext.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", ext.Err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ext.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
