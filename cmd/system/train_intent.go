package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iwantdrugsxd/mind-ease/config"
	"github.com/iwantdrugsxd/mind-ease/internal/intent"
)

func NewTrainIntentCommand() *cobra.Command {
	var (
		datasetPath string
		outPath     string
		holdout     float64
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "train-intent",
		Short: "Train the chat intent classifier and write the model artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			if datasetPath == "" {
				datasetPath = cfg.Intent.DatasetPath
			}
			if outPath == "" {
				outPath = cfg.Intent.ModelPath
			}
			if outPath == "" {
				outPath = "intent_model.json"
			}

			var ds *intent.Dataset
			if datasetPath != "" {
				ds, err = intent.LoadDataset(datasetPath)
			} else {
				ds, err = intent.DefaultDataset()
			}
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}

			model, err := intent.Train(ds, intent.TrainOptions{
				Holdout: holdout,
				Seed:    seed,
			})
			if err != nil {
				return fmt.Errorf("training failed: %w", err)
			}

			if err := model.Save(outPath); err != nil {
				return fmt.Errorf("failed to write model artifact: %w", err)
			}

			fmt.Printf("Trained on %d patterns across %d intents.\n",
				model.Meta.NumPatterns, model.Meta.NumClasses)
			if holdout > 0 {
				fmt.Printf("Holdout accuracy: %.3f\n", model.Meta.HoldoutAccuracy)
			}
			fmt.Printf("Model artifact written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to a labeled pattern set (defaults to the bundled dataset)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path for the model artifact (defaults to intent.model_path)")
	cmd.Flags().Float64Var(&holdout, "holdout", 0.1, "Fraction of patterns held out for the accuracy estimate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for the holdout split")

	return cmd
}
