package kfmt

import "io"

// PrefixWriter is an io.Writer that wraps another io.Writer and injects a
// prefix at the beginning of each line. The loader uses it to tag its
// progress output with "[boot] ".
type PrefixWriter struct {
	// A writer where all writes get sent to. If nil, writes follow the
	// active output sink set via SetOutputSink.
	Sink io.Writer

	// The prefix injected at the beginning of each line.
	Prefix []byte

	midLine bool
}

// Write sends p to the sink, emitting the prefix before the first byte of
// every line. A prefix is never emitted for a line that has not started yet,
// so a trailing newline does not produce a dangling prefix. The returned
// byte count excludes injected prefixes.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var (
		written, lineStart int
		sink               = w.sink()
	)

	for i, b := range p {
		if !w.midLine {
			if _, err := sink.Write(w.Prefix); err != nil {
				return written, err
			}
			w.midLine = true
		}

		if b != '\n' {
			continue
		}

		n, err := sink.Write(p[lineStart : i+1])
		written += n
		if err != nil {
			return written, err
		}
		lineStart = i + 1
		w.midLine = false
	}

	if lineStart < len(p) {
		n, err := sink.Write(p[lineStart:])
		written += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

func (w *PrefixWriter) sink() io.Writer {
	switch {
	case w.Sink != nil:
		return w.Sink
	case outputSink != nil:
		return outputSink
	default:
		return &earlyPrintBuffer
	}
}
