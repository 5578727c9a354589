// @title         atsmatch API
// @version       1.0
// @description   Сервис оценки соответствия резюме вакансии: извлечение текста из PDF/DOC/DOCX, сопоставление ключевых слов и оценка LLM.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/atsmatch/pkg/config"
	"github.com/artem13815/atsmatch/pkg/logger"
)

// cfg заполняется в PersistentPreRunE до запуска любой подкоманды.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "atsmatch",
	Short:         "Resume to job description matching service",
	Long:          "atsmatch extracts text from PDF, DOC and DOCX resumes, matches it against a job description and stores a scored report.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Load configuration from env/.env
		cfg = config.Load()
		logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		return cfg.Validate()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
