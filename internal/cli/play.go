package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"quizzer/internal/config"
	"quizzer/internal/logging"
	"quizzer/internal/question"
	"quizzer/internal/quiz"
	"quizzer/internal/ui/live"
	"quizzer/internal/ui/plain"
)

// renderer is the surface shared by the live and plain UIs.
type renderer interface {
	SelectTopic(choices []string) (string, error)
	Play(session *quiz.Session, title string) (quiz.Summary, error)
}

// newRenderer is swapped in tests to drive the plain UI regardless of TTY.
var newRenderer = defaultRenderer

func defaultRenderer(useLive bool, cfg config.Config, stdin io.Reader, stdout io.Writer) renderer {
	if useLive {
		return live.New(live.Options{NoColor: cfg.NoColor, Input: stdin, Output: stdout, AltScreen: true})
	}
	return plain.New(stdin, stdout, plain.Options{NoColor: cfg.NoColor})
}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to settings file (default: search for .quizzer.yml)")
		flags.String("file", "", "Question file (default: questions.json)")
		topic := flags.String("topic", "", "Topic to play; skips the topic selector")
		flags.String("ui", "", "UI mode: auto|live|plain")
		flags.String("distractors", "", "Topics with too few wrong answers: reject|fallback")
		flags.Float64("pass-ratio", 0, "Share of the question count needed to pass")
		flags.Bool("no-color", false, "Disable colored output")
		flags.Bool("verbose", false, "Log session events")
		flags.String("log-file", "", "Write verbose logs to this file")
		seed := flags.Uint64("seed", 0, "Random seed for a reproducible run")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadSettings(flags, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid settings:\n%v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(cfg.UI, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logOptions := logging.Options{Verbose: cfg.Verbose, NoColor: cfg.NoColor, Writer: stderr, LogFile: cfg.LogFile}
		if decision.useLive && cfg.Verbose && cfg.LogFile == "" {
			logOptions.Verbose = false
			fmt.Fprintln(stderr, "Verbose logging is off while the live UI runs; pass --log-file to keep it.")
		}
		logger, closeLog, err := logging.New(logOptions)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		defer closeLog()

		bank, err := question.Load(cfg.QuestionsFile)
		if err != nil {
			logger.Error("load question file", zap.String("path", cfg.QuestionsFile), zap.Error(err))
			return reportError(stderr, err)
		}
		logger.Info("question file loaded",
			zap.String("path", cfg.QuestionsFile),
			zap.String("title", bank.Title),
			zap.Int("topics", len(bank.Topics)),
			zap.Int("questions", bank.Len()),
		)

		var rng *rand.Rand
		if flagWasSet(flags, "seed") {
			rng = rand.New(rand.NewPCG(*seed, *seed+1))
		}

		ui := newRenderer(decision.useLive, cfg, stdin, stdout)
		choice := strings.TrimSpace(*topic)
		if choice == "" {
			choice, err = ui.SelectTopic(bank.Choices())
			if err != nil {
				return reportError(stderr, err)
			}
		}
		logger.Debug("topic chosen", zap.String("topic", choice))

		questions, err := bank.Select(choice)
		if err != nil {
			return reportError(stderr, err)
		}
		session, err := quiz.NewSession(questions, quiz.Options{
			Topic:       choice,
			PassRatio:   cfg.PassRatio,
			Distractors: quiz.DistractorMode(cfg.Distractors),
			Rand:        rng,
			Observers:   []quiz.Observer{logging.NewSessionObserver(logger)},
		})
		if err != nil {
			return reportError(stderr, err)
		}

		summary, err := ui.Play(session, bank.Title)
		if err != nil && !errors.Is(err, quiz.ErrCancelled) {
			return reportError(stderr, err)
		}
		fmt.Fprintln(stdout, quiz.SummaryLine(summary))
		if err != nil {
			return reportError(stderr, err)
		}
		return ExitOK
	}
}

// flagWasSet reports whether name was given on the command line.
func flagWasSet(flags *flag.FlagSet, name string) bool {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
