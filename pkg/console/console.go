package console

import (
	"fmt"
	"io"
	"sync"
)

// Sink accepts lines of notification text. The task list manager and the
// console reminder channels only need "accepts a line of text"; where those
// lines end up is the embedder's concern.
type Sink interface {
	Println(line string)
}

// writerSink writes each line to an io.Writer.
type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a Sink that writes one line per notification to w.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}
