package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/agbru/decicalc/internal/multiply"
)

func TestDisplayProgressFinalLine(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	ch := make(chan multiply.ProgressUpdate, 4)
	ch <- multiply.ProgressUpdate{Index: 0, Value: 0.5}
	ch <- multiply.ProgressUpdate{Index: 1, Value: 1}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, ch, 2, &out)
	wg.Wait()

	got := out.String()
	if !strings.Contains(got, "Avg progress") || !strings.Contains(got, "100.00%") {
		t.Errorf("final line = %q", got)
	}
}

func TestDisplayProgressNoMultipliers(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	ch := make(chan multiply.ProgressUpdate, 1)
	ch <- multiply.ProgressUpdate{Value: 1}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, ch, 0, &out)
	wg.Wait()
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
