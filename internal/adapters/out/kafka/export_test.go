package kafka

func NewPublisherWithWriter(w messageWriter, topic string) *Publisher {
	return &Publisher{writer: w, topic: topic}
}

var WriterConfig = writerConfig
