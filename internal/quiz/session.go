package quiz

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"quizzer/internal/question"
)

// Options configures a session.
type Options struct {
	Topic       string
	PassRatio   float64
	Distractors DistractorMode
	Rand        *rand.Rand
	Observers   []Observer
}

// Session drives present -> evaluate -> advance until the required score is reached.
type Session struct {
	id        string
	topic     string
	questions []question.Question
	mode      DistractorMode
	rng       *rand.Rand
	observers []Observer
	state     State
	rounds    int
	ended     bool
}

// NewSession checks the question set and starts a session over it.
func NewSession(questions []question.Question, opts Options) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	mode, err := ParseDistractorMode(string(opts.Distractors))
	if err != nil {
		return nil, err
	}
	if err := CheckDistractors(questions, mode); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	session := &Session{
		id:        uuid.NewString(),
		topic:     opts.Topic,
		questions: append([]question.Question(nil), questions...),
		mode:      mode,
		rng:       rng,
		observers: opts.Observers,
		state:     State{Required: RequiredScore(len(questions), opts.PassRatio)},
	}
	session.notify(func(o Observer) {
		o.OnSessionStart(SessionInfo{
			ID:        session.id,
			Topic:     session.topic,
			Questions: len(session.questions),
			Required:  session.state.Required,
		})
	})
	return session, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Topic returns the topic the session was started for.
func (s *Session) Topic() string { return s.topic }

// State returns a copy of the current state.
func (s *Session) State() State {
	state := s.state
	state.Options = append([]string(nil), s.state.Options...)
	return state
}

// Progress returns the current progress percentage.
func (s *Session) Progress() float64 {
	return Progress(s.state.Score, s.state.Required)
}

// Done reports whether the required score has been reached.
func (s *Session) Done() bool { return s.state.Done }

// Next draws a question uniformly at random, with replacement, and presents it.
// Calling Next while a question is presented returns the same round.
func (s *Session) Next() (Round, error) {
	if s.state.Done {
		return Round{}, ErrSessionOver
	}
	if s.state.Presenting {
		return s.round(), nil
	}
	current := s.questions[s.rng.IntN(len(s.questions))]
	options, err := BuildOptions(s.rng, s.questions, current, s.mode)
	if err != nil {
		return Round{}, err
	}
	s.state.Current = current
	s.state.Options = options
	s.state.Presenting = true
	s.rounds++
	round := s.round()
	s.notify(func(o Observer) { o.OnRound(s.id, round) })
	return round, nil
}

// Answer scores the chosen option and ends the session once the required score is reached.
func (s *Session) Answer(answer string) (Outcome, error) {
	if s.state.Done {
		return Outcome{}, ErrSessionOver
	}
	if !s.state.Presenting {
		return Outcome{}, ErrNoRound
	}
	if !s.offered(answer) {
		return Outcome{}, ErrUnknownOption
	}
	outcome, next := Evaluate(s.state, answer)
	s.state = next
	s.notify(func(o Observer) { o.OnAnswer(s.id, outcome) })
	if outcome.Done {
		s.end(true)
	}
	return outcome, nil
}

// Abandon ends a session that has not passed. It is a no-op once the session ended.
func (s *Session) Abandon() {
	s.end(false)
}

// Summary describes the session so far.
func (s *Session) Summary() Summary {
	return Summary{
		ID:       s.id,
		Passed:   s.state.Done,
		Score:    s.state.Score,
		Required: s.state.Required,
		Rounds:   s.state.Answered,
	}
}

func (s *Session) end(passed bool) {
	if s.ended {
		return
	}
	s.ended = true
	s.state.Presenting = false
	summary := s.Summary()
	summary.Passed = passed
	s.notify(func(o Observer) { o.OnSessionEnd(summary) })
}

func (s *Session) round() Round {
	return Round{
		Number:   s.rounds,
		Question: s.state.Current.Prompt,
		Topic:    s.state.Current.Topic,
		Options:  append([]string(nil), s.state.Options...),
		Score:    s.state.Score,
		Required: s.state.Required,
		Progress: s.Progress(),
	}
}

func (s *Session) offered(answer string) bool {
	for _, option := range s.state.Options {
		if question.AnswersEqual(option, answer) {
			return true
		}
	}
	return false
}

func (s *Session) notify(fn func(Observer)) {
	for _, observer := range s.observers {
		if observer != nil {
			fn(observer)
		}
	}
}
