package explorer_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"

	"github.com/agbru/litperf/internal/explorer"
	"github.com/agbru/litperf/internal/explorer/mocks"
	"github.com/agbru/litperf/internal/logging"
)

func TestTimed_LogsCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockExplorer(ctrl)
	ctx := context.Background()

	next.EXPECT().SearchPapers(ctx, "topic").Return([]explorer.Paper{{Title: "paper1"}}, nil)
	next.EXPECT().RecommendPapers(ctx, "doi:x").Return(nil, errors.New("network error"))

	var buf bytes.Buffer
	logger := logging.NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
	timed := explorer.NewTimed(next, logger)

	papers, err := timed.SearchPapers(ctx, "topic")
	if err != nil || len(papers) != 1 {
		t.Fatalf("SearchPapers passthrough failed: %v %v", papers, err)
	}
	if _, err := timed.RecommendPapers(ctx, "doi:x"); err == nil {
		t.Fatal("expected error passthrough")
	}

	out := buf.String()
	if strings.Contains(out, `"level":"error"`) {
		t.Errorf("failed calls are logged at debug level, got: %s", out)
	}
	for _, want := range []string{"SearchPapers", "inference_time", "result_size", "RecommendPapers", "network error"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output should contain %q, got: %s", want, out)
		}
	}
}
