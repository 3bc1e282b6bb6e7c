package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"faredash/app/sentiment"

	"github.com/spf13/cobra"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify <text...>",
	Short: "Classify a comment as Positive, Neutral or Negative",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the result as JSON")
}

func runClassify(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	label, score := sentiment.NewClassifier(nil).ClassifyWithScore(text)

	out := cmd.OutOrStdout()
	if classifyJSON {
		return json.NewEncoder(out).Encode(map[string]interface{}{
			"text":      text,
			"score":     score,
			"sentiment": label,
		})
	}
	fmt.Fprintf(out, "%s\t%.3f\n", label, score)
	return nil
}
