package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Vishakha-Patel-66/ResumeRanking/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Compute the full resumes x jobs similarity matrix and export it as CSV",
	Run: func(cmd *cobra.Command, _ []string) {
		matrix(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)

	matrixCmd.Flags().StringP("resumes", "r", "", "path to the resume dataset (CSV with Name, Resume_ID, Skills)")
	matrixCmd.Flags().StringP("jobs", "b", "", "path to the job dataset (CSV with Job Title, Required Skills)")
	matrixCmd.Flags().Int("workers", 0, "similarity worker pool size, 0 means one per CPU")
	matrixCmd.Flags().StringP("output", "o", "", "output CSV file, stdout when unset")
}

func matrix(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	s, jobs := prepareSession(cmd, config, logger)

	scores, err := s.ScoreMatrix(jobs)
	if err != nil {
		logger.Fatal("computing score matrix", zap.Error(err))
	}

	logger.Info("computed score matrix",
		zap.Int("resumes", s.Resumes().Len()),
		zap.Int("jobs", jobs.Len()),
	)

	var out io.Writer = os.Stdout
	if path := strings.TrimSpace(cmd.Flag("output").Value.String()); path != "" {
		file, err := os.Create(path)
		if err != nil {
			logger.Fatal("creating output file", zap.Error(err))
		}
		defer file.Close()
		out = file

		logger.Info("writing score matrix", zap.String("filename", path))
	}

	if err := writeMatrixCSV(out, s.Resumes().IDs(), jobs.Titles(), scores); err != nil {
		logger.Fatal("writing score matrix", zap.Error(err))
	}
}

// writeMatrixCSV writes a matrix with job titles as columns and resume ids as
// rows, scores at three decimals.
func writeMatrixCSV(w io.Writer, resumeIDs, jobTitles []string, scores [][]float64) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Resume_ID"}, jobTitles...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, id := range resumeIDs {
		record := make([]string, 0, len(jobTitles)+1)
		record = append(record, id)
		for _, score := range scores[i] {
			record = append(record, strconv.FormatFloat(score, 'f', 3, 64))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row for %s: %w", id, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
