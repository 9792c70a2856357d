package progress

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/mocksmith/mocksmith-cli/util/common"
)

// BarWriter counts bytes written through it into a pterm progress bar.
type BarWriter struct {
	bar *pterm.ProgressbarPrinter
}

func (w *BarWriter) Write(p []byte) (int, error) {
	n := len(p)
	w.bar.Add(n)
	return n, nil
}

// Reader wraps reader with a progress bar titled after the transfer.
// The returned func stops the bar; call it when the transfer finishes.
// A non-positive contentLength renders an indeterminate bar.
func Reader(contentLength int64, reader io.Reader, title string) (io.Reader, func()) {
	if contentLength > 0 {
		title = fmt.Sprintf("%s (%s)", title, common.GetSize(contentLength))
	}
	bar := pterm.DefaultProgressbar.
		WithTitle(title).WithRemoveWhenDone(false)

	if contentLength > 0 {
		bar = bar.WithTotal(int(contentLength))
	}

	pb, _ := bar.Start()
	done := func() {
		if pb != nil {
			_, _ = pb.Stop()
		}
	}
	if pb == nil {
		return reader, done
	}

	return io.TeeReader(reader, &BarWriter{bar: pb}), done
}
