package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/edubot/internal/classifier"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [message]",
	Short: "Classify a student message without calling any model",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "output the classification as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

type analysis struct {
	classifier.Result
	Recommendation string `json:"recommendation"`
	MatchedSet     string `json:"matched_set,omitempty"`
	MatchedRule    string `json:"matched_rule,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	a := analysis{Result: classifier.Classify(message)}
	a.Recommendation = classifier.Recommendation(a.IsDirectAnswerRequest)
	if hit, ok := classifier.Explain(message); ok {
		a.MatchedSet, a.MatchedRule = hit.Set, hit.Rule.Pattern
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	fmt.Fprintf(out, "Direct answer request: %t\n", a.IsDirectAnswerRequest)
	fmt.Fprintf(out, "Factual question:      %t\n", a.IsFactualQuestion)
	fmt.Fprintf(out, "Recommendation:        %s\n", a.Recommendation)
	if a.MatchedRule != "" {
		fmt.Fprintf(out, "Matched:               %s %q\n", a.MatchedSet, a.MatchedRule)
	}
	return nil
}
