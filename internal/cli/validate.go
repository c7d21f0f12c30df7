package cli

import (
	"flag"
	"fmt"
	"io"

	"quizzer/internal/question"
	"quizzer/internal/quiz"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to settings file (default: search for .quizzer.yml)")
		flags.String("file", "", "Question file (default: questions.json)")
		flags.String("distractors", "", "Topics with too few wrong answers: reject|fallback")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadSettings(flags, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		bank, err := question.Load(cfg.QuestionsFile)
		if err != nil {
			return reportError(stderr, err)
		}
		questions, err := bank.Select(question.AllTopics)
		if err != nil {
			return reportError(stderr, err)
		}
		if len(questions) == 0 {
			return reportError(stderr, quiz.ErrNoQuestions)
		}
		if err := quiz.CheckDistractors(questions, quiz.DistractorMode(cfg.Distractors)); err != nil {
			return reportError(stderr, err)
		}

		fmt.Fprintf(stdout, "Questions OK: %d topics, %d questions\n", len(bank.Topics), len(questions))
		return ExitOK
	}
}
