package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/edubot/internal/classifier"
	"github.com/ziadkadry99/edubot/internal/llm"
	"github.com/ziadkadry99/edubot/internal/prompts"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tutor a single question and print the filtered reply",
	Long: `Sends one question to the primary model (falling back to the secondary)
under the tutoring preamble, without streaming, and prints the reply after
direct answers have been filtered out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().Bool("raw", false, "print the model reply without filtering")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	raw, _ := cmd.Flags().GetBool("raw")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := setupLogger(cfg)
	if err := requireAPIKey(cfg); err != nil {
		return err
	}

	completer := llm.NewCompleter(gatewayConfigFrom(cfg))
	log.Debug("asking", "providers", completer.Name(), "classification", classifier.Classify(question))

	resp, err := completer.Complete(context.Background(), llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: prompts.Tutor},
			{Role: llm.RoleUser, Content: question},
		},
	})
	if err != nil {
		return fmt.Errorf("asking tutor: %w", err)
	}

	answer := resp.Content
	if !raw {
		answer = classifier.FilterDirectAnswers(answer, question)
	}
	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
