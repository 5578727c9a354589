package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/atsmatch/pkg/analysis"
	"github.com/artem13815/atsmatch/pkg/logger"
	"github.com/artem13815/atsmatch/pkg/resume"
)

var (
	analyzeResume  string
	analyzeJob     string
	analyzeJobFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file against a job description and print the report",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.pdf, .doc, .docx)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Job description text")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job-file", "", "Path to a text file with the job description")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	job := analyzeJob
	if analyzeJobFile != "" {
		b, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		job = string(b)
	}
	if strings.TrimSpace(job) == "" {
		return errors.New("job description is required (use --job or --job-file)")
	}
	if !resume.FormatFromName(analyzeResume).Supported() {
		return fmt.Errorf("unsupported resume file %q: only .pdf, .doc and .docx are allowed", analyzeResume)
	}

	// сервис удаляет загруженный файл, поэтому работаем с копией
	tmp, err := copyToTemp(analyzeResume)
	if err != nil {
		return err
	}

	d, err := wire(ctx, cfg)
	if err != nil {
		resume.RemoveTemp(ctx, tmp)
		return err
	}
	defer d.Close()

	res, err := d.analysis.Analyze(ctx, analysis.Submission{
		FileName:       filepath.Base(analyzeResume),
		FilePath:       tmp,
		JobDescription: job,
	})
	if err != nil {
		return err
	}
	logger.Info().Int64("id", res.Record.ID).Msg(res.String())

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res.Record)
}

func copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open resume: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "atsmatch-*"+strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("copy resume: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("copy resume: %w", err)
	}
	return dst.Name(), nil
}
