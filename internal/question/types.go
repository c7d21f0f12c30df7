package question

// AllTopics is the synthetic topic choice that selects every topic.
const AllTopics = "All Topics"

// Bank is a parsed question file: a title plus topics in file order.
type Bank struct {
	Title  string
	Topics []Topic
}

// Topic groups prompt/answer pairs under a name.
type Topic struct {
	Name    string
	Entries []Entry
}

// Entry is a single prompt and its correct answer.
type Entry struct {
	Prompt string
	Answer string
}

// Question is an entry tagged with the topic it came from.
type Question struct {
	Prompt string
	Answer string
	Topic  string
}

// document mirrors the on-disk layout of a question file.
type document struct {
	Title     *string   `json:"title" yaml:"title"`
	Questions *topicMap `json:"questions" yaml:"questions"`
}
