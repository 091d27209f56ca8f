package notify

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	err := n.Notify(context.Background(), Message{Kind: "notice", To: "c1", Body: "pay by Friday"})
	if err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"kind=notice", "to=c1", `body="pay by Friday"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}
