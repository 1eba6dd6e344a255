package sim

import (
	"errors"
	"slices"
	"testing"

	"github.com/SvenDH/go-bartog/game"
)

func TestBatchFinishes(t *testing.T) {
	for cpus := 1; cpus <= game.MaxCPUs; cpus++ {
		cfg := game.DefaultConfig()
		cfg.CPUs = cpus
		cfg.Seed = uint64(cpus)
		cfg.Strict = true

		results, err := Batch(cfg, 10, 100000, nil)
		if err != nil {
			t.Fatalf("cpus %d: %v", cpus, err)
		}
		if len(results) != 10 {
			t.Fatalf("cpus %d: %d results", cpus, len(results))
		}
		for _, r := range results {
			if !r.Finished || len(r.Winners) == 0 {
				t.Errorf("cpus %d: deal %s (seed %d) did not finish in %d frames", cpus, r.ID, r.Seed, r.Frames)
			}
		}
	}
}

func TestBatchReproducible(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 7
	cfg.Strict = true

	a, err := Batch(cfg, 3, 100000, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Batch(cfg, 3, 100000, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].Seed != b[i].Seed || a[i].Frames != b[i].Frames || !slices.Equal(a[i].Winners, b[i].Winners) {
			t.Fatalf("game %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRunFrameLimit(t *testing.T) {
	cfg := game.DefaultConfig()
	res, err := Run(cfg, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Finished || res.Frames != 3 {
		t.Fatalf("result = %+v", res)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.CPUs = 0
	if _, err := Run(cfg, 10, nil); !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("err = %v", err)
	}
}
