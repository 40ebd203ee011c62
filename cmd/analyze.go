package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/export"
	"github.com/skillbridge/skillbridge/internal/github"
	"github.com/skillbridge/skillbridge/internal/logger"
	"github.com/skillbridge/skillbridge/internal/pipeline"
	"github.com/skillbridge/skillbridge/internal/progress"
	"github.com/skillbridge/skillbridge/internal/recommend"
	"github.com/skillbridge/skillbridge/internal/schema"
	"github.com/skillbridge/skillbridge/internal/taxonomy"
)

// stageMessages are the spinner texts shown per pipeline stage.
var stageMessages = map[string]string{
	pipeline.StageProviderResolution: "Resolving AI provider...",
	pipeline.StageInputAcquisition:   "Gathering inputs...",
	pipeline.StageResumeParser:       "Parsing resume...",
	pipeline.StageJobParser:          "Parsing job description...",
	pipeline.StageAIContext:          "Enriching developer context...",
	pipeline.StageAnalysis:           "Classifying skill gaps...",
	pipeline.StageExperience:         "Inferring experience level...",
	pipeline.StagePortfolio:          "Deriving portfolio insights...",
	pipeline.StageRecommendations:    "Generating recommendations...",
	pipeline.StageResultAssembly:     "Assembling result...",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full skill-gap analysis",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("job", "", "path to a job description text file, or '-' for stdin")
	analyzeCmd.Flags().String("job-url", "", "URL of a job posting to fetch")
	analyzeCmd.Flags().StringP("github-user", "u", "", "GitHub username (or profile URL) to analyze")
	analyzeCmd.Flags().String("resume", "", "path to a plain-text resume for enrichment")
	analyzeCmd.Flags().Bool("example", false, "use bundled example data instead of live inputs")
	analyzeCmd.Flags().Bool("no-ai", false, "force the heuristic provider, no AI calls")
	analyzeCmd.Flags().StringP("output", "o", "", "write the result JSON to a file instead of stdout")
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting the analysis", zap.String("version", version))

	req, err := buildRequest(cmd, config)
	if err != nil {
		fail(err)
	}

	reporter := progress.New()
	defer reporter.StopSpinner()

	p, err := buildPipeline(config, zlog, reporter)
	if err != nil {
		fail(err)
	}

	result, err := p.Run(ctx, req)
	if err != nil {
		reporter.StopSpinner()
		fail(err)
	}
	reporter.Done("Analysis complete.")

	if err := writeResult(cmd, result); err != nil {
		fail(err)
	}
}

// buildRequest translates flags and config into a pipeline request.
func buildRequest(cmd *cobra.Command, config *Config) (pipeline.Request, error) {
	flags := cmd.Flags()

	jobPath, _ := flags.GetString("job")
	jobURL, _ := flags.GetString("job-url")
	githubUser, _ := flags.GetString("github-user")
	resumePath, _ := flags.GetString("resume")
	example, _ := flags.GetBool("example")
	noAI, _ := flags.GetBool("no-ai")

	req := pipeline.Request{
		JobURL:             jobURL,
		GitHubUser:         githubUser,
		Provider:           config.providerName(),
		NoAI:               noAI,
		Example:            example,
		MaxRecommendations: config.maxRecommendations(),
	}

	if jobPath != "" {
		text, err := readInput(jobPath)
		if err != nil {
			return req, fmt.Errorf("reading job description: %w", err)
		}
		req.JobText = text
	}
	if resumePath != "" {
		text, err := readInput(resumePath)
		if err != nil {
			return req, fmt.Errorf("reading resume: %w", err)
		}
		req.ResumeText = text
	}
	return req, nil
}

// buildPipeline assembles the engine from config.
func buildPipeline(config *Config, zlog *zap.Logger, reporter *progress.Reporter) (*pipeline.Pipeline, error) {
	catalog, err := recommend.LoadCatalog()
	if err != nil {
		return nil, err
	}

	token, err := githubToken(config)
	if err != nil {
		return nil, err
	}

	var clientOpts []github.ClientOption
	if config.Cache == nil || !config.Cache.Disabled {
		ttl := github.DefaultCacheTTL
		if config.Cache != nil && config.Cache.TTLSeconds > 0 {
			ttl = time.Duration(config.Cache.TTLSeconds) * time.Second
		}
		clientOpts = append(clientOpts, github.WithCache(github.NewCache(ttl)))
	}

	analyzer := github.NewAnalyzer(github.NewClient(token, zlog, clientOpts...), zlog)

	return pipeline.New(
		taxonomy.New(),
		catalog,
		buildRegistry(config, zlog),
		zlog,
		pipeline.WithGitHub(analyzer),
		pipeline.WithNotify(func(stage string) {
			if msg, ok := stageMessages[stage]; ok {
				reporter.StartSpinner(msg)
			}
		}),
	), nil
}

func writeResult(cmd *cobra.Command, result *schema.AnalysisResult) error {
	snapshot := export.NewSnapshot(result, version)
	data, err := snapshot.JSON()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := confirmOverwrite(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Result written to %s\n", output)
	return nil
}

// confirmOverwrite asks before replacing an existing file.
func confirmOverwrite(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("%s already exists. Overwrite?", path),
		Items: []string{"Yes", "No"},
	}
	_, answer, err := prompt.Run()
	if err != nil {
		return err
	}
	if answer != "Yes" {
		return errors.New("aborted, output file left untouched")
	}
	return nil
}

// readInput reads a file path, with '-' meaning stdin.
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
