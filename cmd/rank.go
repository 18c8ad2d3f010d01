package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Vishakha-Patel-66/ResumeRanking/internal/corpus"
	"github.com/Vishakha-Patel-66/ResumeRanking/internal/logger"
	"github.com/Vishakha-Patel-66/ResumeRanking/internal/ranking"
	"github.com/Vishakha-Patel-66/ResumeRanking/internal/session"
	"github.com/Vishakha-Patel-66/ResumeRanking/internal/utils"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExportCSV    = "Export top matches to CSV"
	PromptScoreReport  = "Report scores for all resumes"
	PromptDone         = "Done"
	defaultExportFile  = "top_matches.csv"
	maxLoggedSkillsLen = 120
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "Next action",
	Items: []string{PromptExportCSV, PromptScoreReport, PromptDone},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every resume against a selected job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("resumes", "r", "", "path to the resume dataset (CSV with Name, Resume_ID, Skills)")
	rankCmd.Flags().StringP("jobs", "b", "", "path to the job dataset (CSV with Job Title, Required Skills)")
	rankCmd.Flags().String("job", "", "job title to rank against; prompts interactively when unset")
	rankCmd.Flags().IntP("top", "n", 0, "number of top resumes to display, clamped into [5, 50]")
	rankCmd.Flags().Int("workers", 0, "similarity worker pool size, 0 means one per CPU")
	rankCmd.Flags().StringP("export", "o", "", "CSV file for exported top matches")
	rankCmd.Flags().BoolP("auto-export", "y", false, "export the top matches without prompting for an action")

	viper.BindPFlag("ranking.top", rankCmd.Flags().Lookup("top"))
	viper.BindPFlag("export.file", rankCmd.Flags().Lookup("export"))
}

// rank is the main command for the cli.
func rank(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-ranking", zap.String("version", version))

	s, jobs := prepareSession(cmd, config, logger)

	job, err := selectJob(cmd.Flag("job").Value.String(), jobs)
	if err != nil {
		logger.Fatal("selecting a job", zap.Error(err))
	}

	logger.Info("ranking resumes against job",
		zap.String("job_title", job.Title),
		zap.String("required_skills", utils.TruncateForLog(job.Skills, maxLoggedSkillsLen)),
	)

	result, err := s.Rank(job)
	if err != nil {
		logger.Fatal("ranking resumes", zap.Error(err))
	}

	topN := config.Ranking.Top
	if topN == 0 {
		topN = ranking.TopDefault
	}

	top := result.Top(topN)
	rows, err := ranking.Rows(top, s.Resumes())
	if err != nil {
		logger.Fatal("building result rows", zap.Error(err))
	}

	fmt.Printf("Job Title: %s\nRequired Skills: %s\n\n", job.Title, job.Skills)
	if err := ranking.RenderTable(os.Stdout, rows); err != nil {
		logger.Fatal("rendering table", zap.Error(err))
	}

	if cmd.Flag("auto-export").Value.String() == "true" {
		if err := exportRows(rows, config, logger); err != nil {
			logger.Fatal("exporting top matches", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, rows, result, s, config, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, rows []ranking.Row, result *ranking.Result, s *session.Session, config *Config, logger *zap.Logger) error {
	switch action {
	case PromptExportCSV:
		return exportRows(rows, config, logger)
	case PromptScoreReport:
		reportScores(result, s)
		return nil
	case PromptDone:
		logger.Info("exiting", zap.String("reason", "done requested"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func exportRows(rows []ranking.Row, config *Config, logger *zap.Logger) error {
	path := strings.TrimSpace(config.Export.File)
	if path == "" {
		path = defaultExportFile
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	if err := ranking.WriteCSV(file, rows); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	logger.Info("exported top matches", zap.String("filename", path), zap.Int("rows", len(rows)))
	return nil
}

// reportScores prints every resume's score as a percentage, the rounding used
// for chart labels.
func reportScores(result *ranking.Result, s *session.Session) {
	byID := make(map[string]*corpus.Resume, s.Resumes().Len())
	for _, resume := range s.Resumes().Items {
		byID[resume.ID] = resume
	}

	for _, entry := range result.Entries {
		name := ""
		if resume, ok := byID[entry.ID]; ok {
			name = resume.Name
		}
		fmt.Printf("%s (ID:%s) → %.2f%%\n", name, entry.ID, ranking.Percent(entry.Score))
	}
}

// prepareSession loads both datasets and fits the vocabulary on the resumes.
// Dataset and worker flags are shared by several commands, so they override
// the config here instead of being bound to viper keys.
func prepareSession(cmd *cobra.Command, config *Config, logger *zap.Logger) (*session.Session, *corpus.Jobs) {
	if v := cmd.Flag("resumes").Value.String(); v != "" {
		config.Datasets.Resumes = v
	}
	if v := cmd.Flag("jobs").Value.String(); v != "" {
		config.Datasets.Jobs = v
	}
	if v, err := cmd.Flags().GetInt("workers"); err == nil && v > 0 {
		config.Ranking.Workers = v
	}

	if config.Datasets.Resumes == "" || config.Datasets.Jobs == "" {
		logger.Fatal("both resume and job datasets are required",
			zap.String("hint", "set --resumes/--jobs flags or the datasets section in the configuration file"),
		)
	}

	resumes, err := corpus.LoadResumes(config.Datasets.Resumes)
	if err != nil {
		logger.Fatal("loading resume dataset", zap.Error(err))
	}

	logger.Info("loaded resume dataset",
		zap.String("path", config.Datasets.Resumes),
		zap.Int("count", resumes.Len()),
	)

	jobs, err := corpus.LoadJobs(config.Datasets.Jobs)
	if err != nil {
		logger.Fatal("loading job dataset", zap.Error(err))
	}

	logger.Info("loaded job dataset",
		zap.String("path", config.Datasets.Jobs),
		zap.Int("count", jobs.Len()),
	)

	s := session.New(logger, config.Ranking.Workers)
	if err := s.Fit(resumes); err != nil {
		logger.Fatal("fitting the resume corpus", zap.Error(err))
	}

	return s, jobs
}

// selectJob resolves the query job from the --job flag or interactively.
func selectJob(title string, jobs *corpus.Jobs) (*corpus.Job, error) {
	if title != "" {
		job := jobs.FindByTitle(title)
		if job == nil {
			return nil, fmt.Errorf("job with title %q not found, existing titles: %s",
				title, strings.Join(jobs.Titles(), ", "))
		}
		return job, nil
	}

	jobPrompt := promptui.Select{
		Label: "Select a job",
		Items: jobs.Titles(),
	}

	_, selected, err := jobPrompt.Run()
	if err != nil {
		return nil, err
	}

	return jobs.FindByTitle(selected), nil
}
