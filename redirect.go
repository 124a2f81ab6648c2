package slogtune

import (
	"bufio"
	"log/slog"
	"os"
)

// RedirectStdout runs fn with os.Stdout routed line-wise through logger.Info.
// The original stdout is restored on every exit path, including a panic in fn,
// which propagates after restoration.
func RedirectStdout(logger *slog.Logger, fn func()) error {
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			logger.Info(sc.Text())
		}
	}()

	orig := os.Stdout
	os.Stdout = w
	defer func() {
		os.Stdout = orig
		_ = w.Close()
		<-drained
		_ = r.Close()
	}()

	fn()
	return nil
}
