package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/export"
	"github.com/skillbridge/skillbridge/internal/logger"
	"github.com/skillbridge/skillbridge/internal/projectspec"
	"github.com/skillbridge/skillbridge/internal/recommend"
	"github.com/skillbridge/skillbridge/internal/schema"
)

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Expand one recommendation from a saved analysis into a full project spec",
	Run: func(cmd *cobra.Command, _ []string) {
		spec(cmd)
	},
}

func init() {
	rootCmd.AddCommand(specCmd)

	specCmd.Flags().String("from", "", "path to a saved analysis JSON (required)")
	specCmd.Flags().Int("recommendation", 0, "1-based recommendation number, 0 prompts interactively")
	specCmd.Flags().String("difficulty", "", "difficulty tier: beginner, intermediate, or advanced (prompts when unset)")
	specCmd.Flags().Bool("no-ai", false, "force heuristic generation, no AI calls")
	specCmd.Flags().StringP("output", "o", "", "write the spec Markdown to a file instead of stdout")

	specCmd.MarkFlagRequired("from")
}

func spec(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	from, _ := cmd.Flags().GetString("from")
	result, err := loadAnalysis(from)
	if err != nil {
		fail(err)
	}
	if len(result.Recommendations) == 0 {
		fail(errors.New("the saved analysis contains no recommendations"))
	}

	rec, err := pickRecommendation(cmd, result)
	if err != nil {
		fail(err)
	}

	difficulty, err := pickDifficulty(cmd)
	if err != nil {
		fail(err)
	}

	provider, err := resolveSpecProvider(ctx, cmd, config, zlog)
	if err != nil {
		fail(err)
	}

	features, err := recommend.LoadFeatures()
	if err != nil {
		fail(err)
	}
	resources, err := recommend.LoadResources()
	if err != nil {
		fail(err)
	}

	generator := projectspec.NewGenerator(features, resources)
	projectSpec, err := generator.Generate(ctx, rec, difficulty, result, provider)
	if err != nil {
		fail(err)
	}

	if err := writeSpec(cmd, projectSpec); err != nil {
		fail(err)
	}
}

// loadAnalysis reads a saved analysis file, accepting either a bare
// result or the snapshot wrapper produced by analyze/export.
func loadAnalysis(path string) (*schema.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing analysis file: %w", err)
	}

	// Snapshot wrapper: the result lives under "analysis".
	if inner, ok := raw["analysis"].(map[string]any); ok {
		raw = inner
	}

	var result schema.AnalysisResult
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &result,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding analysis result: %w", err)
	}
	return &result, nil
}

func pickRecommendation(cmd *cobra.Command, result *schema.AnalysisResult) (schema.Recommendation, error) {
	n, _ := cmd.Flags().GetInt("recommendation")
	if n > 0 {
		if n > len(result.Recommendations) {
			return schema.Recommendation{}, fmt.Errorf(
				"recommendation %d does not exist, the analysis has %d", n, len(result.Recommendations))
		}
		return result.Recommendations[n-1], nil
	}

	titles := make([]string, len(result.Recommendations))
	for i, rec := range result.Recommendations {
		titles[i] = rec.Title
	}

	prompt := promptui.Select{
		Label: "Pick a recommendation to expand",
		Items: titles,
		Size:  len(titles),
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return schema.Recommendation{}, err
	}
	return result.Recommendations[idx], nil
}

func pickDifficulty(cmd *cobra.Command) (schema.DifficultyTier, error) {
	raw, _ := cmd.Flags().GetString("difficulty")
	if raw == "" {
		prompt := promptui.Select{
			Label: "Pick a difficulty tier",
			Items: []string{
				string(schema.DifficultyBeginner),
				string(schema.DifficultyIntermediate),
				string(schema.DifficultyAdvanced),
			},
		}
		_, raw2, err := prompt.Run()
		if err != nil {
			return "", err
		}
		raw = raw2
	}

	tier := schema.DifficultyTier(raw)
	switch tier {
	case schema.DifficultyBeginner, schema.DifficultyIntermediate, schema.DifficultyAdvanced:
		return tier, nil
	}
	return "", fmt.Errorf("unknown difficulty %q, expected beginner, intermediate, or advanced", raw)
}

func resolveSpecProvider(ctx context.Context, cmd *cobra.Command, config *Config, zlog *zap.Logger) (ai.Provider, error) {
	noAI, _ := cmd.Flags().GetBool("no-ai")
	name := config.providerName()
	if noAI || name == "" {
		name = ai.ProviderNone
	}
	return buildRegistry(config, zlog).Resolve(ctx, name)
}

func writeSpec(cmd *cobra.Command, projectSpec *schema.ProjectSpec) error {
	markdown := export.ProjectSpecMarkdown(projectSpec)

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Print(markdown)
		return nil
	}

	if err := confirmOverwrite(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("writing spec: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Project spec written to %s\n", output)
	return nil
}
