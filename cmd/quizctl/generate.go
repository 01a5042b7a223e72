package main

import (
	"encoding/json"
	"fmt"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/service"
	"quiz-forge/internal/util"
	"quiz-forge/internal/validation"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func newGenerateCmd(factory serviceFactory) *cobra.Command {
	var (
		topic      string
		count      int
		difficulty string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a quiz and print it",
		Example: `  quizctl generate --topic "Indonesian strata title regulations"
  quizctl generate --topic "Mortgage pre-approval" --count 5 --difficulty hard --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unsupported format %q (use %s or %s)", format, formatText, formatJSON)
			}

			req := &dto.GenerateQuizRequest{Topic: &topic}
			if cmd.Flags().Changed("count") {
				n := util.WholeNumber(count)
				req.NumberOfQuestions = &n
			}
			if cmd.Flags().Changed("difficulty") {
				req.DifficultyMode = &difficulty
			}
			quizCfg, validationErrs := validation.NewValidator().ValidateGenerateRequest(req)
			if len(validationErrs) > 0 {
				return validationErrs
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			svc, cleanup, err := factory(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			defer cleanup()

			quiz, err := svc.GenerateQuiz(cmd.Context(), quizCfg)
			if err != nil {
				return describeError(err)
			}
			return printQuiz(cmd, quiz, format)
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "property-industry topic (5-200 characters)")
	cmd.Flags().IntVarP(&count, "count", "n", domain.DefaultNumberOfQuestions, "number of questions (3-20)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(domain.DefaultDifficultyMode), "mixed, easy, medium or hard")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func printQuiz(cmd *cobra.Command, quiz *domain.Quiz, format string) error {
	out := cmd.OutOrStdout()
	if format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(quiz)
	}
	_, err := fmt.Fprintln(out, service.RenderQuizText(quiz))
	return err
}

// describeError turns a domain error into its user-facing message,
// keeping the code for scripts that grep stderr.
func describeError(err error) error {
	if domainErr, ok := domain.AsDomainError(err); ok {
		return fmt.Errorf("%s: %s", domainErr.Code, domainErr.Message)
	}
	return err
}
