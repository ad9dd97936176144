package testutil

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestHeadlessReplayRendering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := BuildBinary(t)
	script := filepath.Join(RepoRoot(t), "testdata", "replay", "open_article.keys")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	output := RunBinary(t, ctx, bin, nil,
		"-headless", "-replay", script, "-width", "70", "-height", "5")
	if strings.TrimSpace(output) == "" {
		t.Fatalf("expected frames on stdout")
	}
	AssertGolden(t, filepath.Join("capture", "open_article.txt"), output)
}

func TestHeadlessReplayFromEnvironment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := BuildBinary(t)
	script := filepath.Join(RepoRoot(t), "testdata", "replay", "open_article.keys")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	output := RunBinary(t, ctx, bin, []string{
		"FEEDVIEW_HEADLESS=1",
		"FEEDVIEW_REPLAY=" + script,
		"FEEDVIEW_WIDTH=70",
		"FEEDVIEW_HEIGHT=5",
	})
	AssertGolden(t, filepath.Join("capture", "open_article.txt"), output)
}
