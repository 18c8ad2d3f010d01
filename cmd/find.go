package cmd

import (
	"fmt"
	"log"

	"github.com/Vishakha-Patel-66/ResumeRanking/internal/logger"
	"github.com/Vishakha-Patel-66/ResumeRanking/internal/ranking"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var findCmd = &cobra.Command{
	Use:   "find <name-or-id>",
	Short: "Find candidates by name or id substring and show their match score for a job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		find(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringP("resumes", "r", "", "path to the resume dataset (CSV with Name, Resume_ID, Skills)")
	findCmd.Flags().StringP("jobs", "b", "", "path to the job dataset (CSV with Job Title, Required Skills)")
	findCmd.Flags().String("job", "", "job title to score against; prompts interactively when unset")
	findCmd.Flags().Int("workers", 0, "similarity worker pool size, 0 means one per CPU")
}

func find(cmd *cobra.Command, query string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	s, jobs := prepareSession(cmd, config, logger)

	matched := s.Resumes().Search(query)
	if len(matched) == 0 {
		logger.Info("no candidate found", zap.String("query", query))
		return
	}

	job, err := selectJob(cmd.Flag("job").Value.String(), jobs)
	if err != nil {
		logger.Fatal("selecting a job", zap.Error(err))
	}

	scores, err := s.Scores(job)
	if err != nil {
		logger.Fatal("scoring resumes", zap.Error(err))
	}

	logger.Info("found candidates",
		zap.String("query", query),
		zap.Int("count", len(matched)),
		zap.String("job_title", job.Title),
	)

	for _, idx := range matched {
		resume := s.Resumes().Items[idx]
		fmt.Printf("%s (ID:%s) → Match Score: %.2f%%\n", resume.Name, resume.ID, ranking.Percent(scores[idx]))
	}
}
