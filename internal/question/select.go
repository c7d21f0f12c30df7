package question

import (
	"errors"
	"fmt"
)

// ErrUnknownTopic indicates a topic name that is not in the bank.
var ErrUnknownTopic = errors.New("unknown topic")

// TopicNames returns topic names in file order.
func (bank Bank) TopicNames() []string {
	names := make([]string, 0, len(bank.Topics))
	for _, topic := range bank.Topics {
		names = append(names, topic.Name)
	}
	return names
}

// Choices returns the topic names followed by AllTopics, the list offered to the user.
func (bank Bank) Choices() []string {
	return append(bank.TopicNames(), AllTopics)
}

// Len returns the total number of questions across all topics.
func (bank Bank) Len() int {
	total := 0
	for _, topic := range bank.Topics {
		total += len(topic.Entries)
	}
	return total
}

// Topic looks up a topic by name.
func (bank Bank) Topic(name string) (Topic, bool) {
	for _, topic := range bank.Topics {
		if topic.Name == name {
			return topic, true
		}
	}
	return Topic{}, false
}

// Select returns the questions for a topic, or every question when name is AllTopics.
func (bank Bank) Select(name string) ([]Question, error) {
	if name == AllTopics {
		questions := make([]Question, 0, bank.Len())
		for _, topic := range bank.Topics {
			questions = append(questions, topic.questions()...)
		}
		return questions, nil
	}
	topic, ok := bank.Topic(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTopic, name)
	}
	return topic.questions(), nil
}

func (topic Topic) questions() []Question {
	questions := make([]Question, 0, len(topic.Entries))
	for _, entry := range topic.Entries {
		questions = append(questions, Question{Prompt: entry.Prompt, Answer: entry.Answer, Topic: topic.Name})
	}
	return questions
}
