package hashtrace

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

type (
	// Stats summarizes the records delivered by [Write].
	Stats struct {
		Inserts, Lookups, Removes int
		// Bytes counts the complete lines accepted by the sink.
		Bytes int64
	}
	// countingWriter tracks how many bytes the sink accepted.
	countingWriter struct {
		io.Writer
		accepted int64
	}
	// pendingLine is a buffered record that
	// has not yet been accepted by the sink.
	pendingLine struct {
		kind Kind
		end  int64
	}
	lineWriter struct {
		sink    *countingWriter
		buffer  *bufio.Writer
		pending []pendingLine
		queued  int64
		stats   Stats
	}
)

// Total returns the number of records written.
func (s Stats) Total() int { return s.Inserts + s.Lookups + s.Removes }

func (s *Stats) add(kind Kind) {
	switch kind {
	case Insert:
		s.Inserts++
	case Lookup:
		s.Lookups++
	case Remove:
		s.Removes++
	}
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.Writer.Write(p)
	cw.accepted += int64(n)
	return n, err
}

// Write writes each record of ops to w as a newline terminated line.
// It stops at the first error, which names the index of the
// first record that did not reach w. The returned stats
// only count records whose whole line was accepted by w.
func Write(w io.Writer, ops iter.Seq[Op]) (Stats, error) {
	var (
		sink   = &countingWriter{Writer: w}
		writer = lineWriter{
			sink:   sink,
			buffer: bufio.NewWriter(sink),
		}
		line  = make([]byte, 0, 32)
		index int
		err   error
	)
	for op := range ops {
		if line, err = op.AppendText(line[:0]); err != nil {
			if fErr := writer.flush(); fErr != nil {
				return writer.stats, fErr
			}
			return writer.stats, fmt.Errorf("record %d: %w", index, err)
		}
		line = append(line, '\n')
		if err = writer.write(op.Kind, line); err != nil {
			return writer.stats, err
		}
		index++
	}
	err = writer.flush()
	return writer.stats, err
}

func (lw *lineWriter) write(kind Kind, line []byte) error {
	lw.queued += int64(len(line))
	lw.pending = append(lw.pending, pendingLine{kind: kind, end: lw.queued})
	_, err := lw.buffer.Write(line)
	lw.settle()
	if err != nil {
		return lw.failure(err)
	}
	return nil
}

func (lw *lineWriter) flush() error {
	err := lw.buffer.Flush()
	lw.settle()
	if err != nil {
		return lw.failure(err)
	}
	return nil
}

// settle moves every pending line the sink
// has fully accepted into the stats.
func (lw *lineWriter) settle() {
	var delivered int
	for _, line := range lw.pending {
		if line.end > lw.sink.accepted {
			break
		}
		lw.stats.add(line.kind)
		lw.stats.Bytes = line.end
		delivered++
	}
	lw.pending = append(lw.pending[:0], lw.pending[delivered:]...)
}

func (lw *lineWriter) failure(err error) error {
	return fmt.Errorf("record %d: %w", lw.stats.Total(), err)
}
