package id

import (
	"strconv"
	"sync"
	"testing"
)

func TestNewSnowflake_InvalidNode(t *testing.T) {
	if _, err := NewSnowflake(-1); err == nil {
		t.Fatal("expected error for negative node ID")
	}
	if _, err := NewSnowflake(1024); err == nil {
		t.Fatal("expected error for node ID above max")
	}
}

func TestGenerate_UniqueAndNumeric(t *testing.T) {
	sf, err := NewSnowflake(1)
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := sf.Generate()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
		if _, err := strconv.ParseInt(id, 10, 64); err != nil {
			t.Fatalf("ID is not a decimal int64: %s", id)
		}
	}
}

func TestGenerate_ConcurrentUnique(t *testing.T) {
	sf, err := NewSnowflake(2)
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}

	const workers = 8
	const perWorker = 1000

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, sf.Generate())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				if seen[id] {
					t.Errorf("duplicate ID generated: %s", id)
					return
				}
				seen[id] = true
			}
		}()
	}
	wg.Wait()
}
