package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"quizzer/internal/question"
	"quizzer/internal/quiz"
)

// runTopics builds the handler for the topics command.
func runTopics(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Invalid settings:\n%v\n", err)
			return ExitError
		}
		bank, err := question.Load(cfg.QuestionsFile)
		if err != nil {
			return reportError(stderr, err)
		}

		mode := quiz.DistractorMode(cfg.Distractors)
		rows := make([][]string, 0, len(bank.Topics)+1)
		for _, name := range bank.Choices() {
			questions, err := bank.Select(name)
			if err != nil {
				return reportError(stderr, err)
			}
			rows = append(rows, []string{name, strconv.Itoa(len(questions)), topicStatus(questions, mode)})
		}

		fmt.Fprintln(stdout, bank.Title)
		fmt.Fprintln(stdout, table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Topic", "Questions", "Status").
			Rows(rows...).
			String())
		return ExitOK
	}
}

// topicStatus reports whether a session over questions could start.
func topicStatus(questions []question.Question, mode quiz.DistractorMode) string {
	if len(questions) == 0 {
		return "empty"
	}
	if err := quiz.CheckDistractors(questions, mode); err != nil {
		return "too few wrong answers"
	}
	return "ok"
}
