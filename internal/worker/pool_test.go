package worker

import (
	"context"
	"fmt"
	"testing"

	"github.com/VrushabBayas/chessboard"
	"github.com/VrushabBayas/chessboard/internal/query"
	"github.com/VrushabBayas/chessboard/internal/testutil"
)

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func kingQuery(i int) query.Query {
	return query.Query{Piece: "King", Square: fmt.Sprintf("%c%d", 'A'+i%8, 1+i%8)}
}

func TestPoolBasic(t *testing.T) {
	pool := NewPool(WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Query: kingQuery(i), Index: i})
	}

	go pool.Close()

	if resultCount := collectResults(pool); resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
}

func TestPoolDefaultEvaluates(t *testing.T) {
	pool := NewPool()
	pool.Start()
	pool.Submit(WorkItem{Query: query.Query{Piece: "Pawn", Square: "G1"}, Index: 7})
	go pool.Close()

	for r := range pool.Results() {
		testutil.AssertEqual(t, r.Index, 7)
		testutil.AssertEqual(t, r.Result.Text, "G2")
	}
}

func TestPoolStopDrainsWithoutProcessing(t *testing.T) {
	pool := NewPool(WithWorkers(2), WithBufferSize(100))
	pool.Stop()
	pool.Start()

	for i := 0; i < 50; i++ {
		pool.Submit(WorkItem{Query: kingQuery(i), Index: i})
	}
	go pool.Close()

	if n := collectResults(pool); n != 0 {
		t.Errorf("stopped pool produced %d results; want 0", n)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.opts...)
			if pool.numWorkers != tt.wantWorkers {
				t.Errorf("numWorkers = %d; want %d", pool.numWorkers, tt.wantWorkers)
			}
			if cap(pool.workChan) != tt.wantBuffer {
				t.Errorf("work buffer = %d; want %d", cap(pool.workChan), tt.wantBuffer)
			}
		})
	}
}

func TestEvaluateAll_PreservesOrder(t *testing.T) {
	queries := []query.Query{
		{Piece: "Pawn", Square: "G1"},
		{Piece: "Pawn", Square: "G8"},
		{Piece: "Pawn1", Square: "G8"},
		{Piece: "King", Square: "D5"},
		{Piece: "Queen", Square: "E4"},
	}
	for i := 0; i < 50; i++ {
		queries = append(queries, kingQuery(i))
	}

	results, err := EvaluateAll(context.Background(), queries, WithWorkers(8), WithBufferSize(4))
	testutil.AssertNoError(t, err)
	if len(results) != len(queries) {
		t.Fatalf("len(results) = %d; want %d", len(results), len(queries))
	}
	for i, r := range results {
		testutil.AssertEqual(t, r.Query, queries[i], "index %d", i)
		want := chessboard.GetPossibleMoves(queries[i].Piece, queries[i].Square)
		testutil.AssertEqual(t, r.Text, want, "index %d", i)
	}
}

func TestEvaluateAll_Empty(t *testing.T) {
	got, err := EvaluateAll(context.Background(), nil, WithWorkers(3))
	testutil.AssertNoError(t, err)
	if len(got) != 0 {
		t.Errorf("EvaluateAll(nil) = %v; want empty", got)
	}
}

func TestEvaluateAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	queries := make([]query.Query, 200)
	for i := range queries {
		queries[i] = kingQuery(i)
	}

	results, err := EvaluateAll(ctx, queries, WithWorkers(4))
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertEqual(t, len(results), len(queries))

	answered := 0
	for _, r := range results {
		if r.Text != "" {
			answered++
		}
	}
	if answered != 0 {
		t.Errorf("pre-cancelled batch answered %d queries; want 0", answered)
	}
}

func TestPoolNoRace(t *testing.T) {
	pool := NewPool(WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Query: kingQuery(i), Index: i})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}
