package app

import (
	"flag"
	"strings"
	"testing"
)

func TestWriteUsageListsColorsAndControls(t *testing.T) {
	fs := flag.NewFlagSet("cgol", flag.ContinueOnError)
	NewConfig().Bind(fs)
	var b strings.Builder
	WriteUsage(&b, fs)
	out := b.String()
	for _, want := range []string{Version, "-color-list", "-ticks-limit", "Controls:", "black    0", "red      1", "white    7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("usage missing %q:\n%s", want, out)
		}
	}
}
