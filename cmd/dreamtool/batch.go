package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	pb "gopkg.in/cheggaaa/pb.v1"

	"github.com/racewinner/dreamtool/pkg/catalog"
	"github.com/racewinner/dreamtool/pkg/pipeline"
	"github.com/racewinner/dreamtool/pkg/scenario"
)

// runBatch analyzes every scenario YAML in a directory with a worker pool,
// writing a <name>.result.json next to each input.
func runBatch(dir string, workers int) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no scenario files in %s", dir)
	}
	if workers <= 0 {
		workers = maxParallelism()
	}

	bar := pb.StartNew(len(files))
	defer bar.Finish()

	jobs := make(chan string, len(files))
	for _, f := range files {
		jobs <- f
	}
	close(jobs)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
	)
	cat := catalog.Default()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := analyzeFile(cat, path); err != nil {
					mu.Lock()
					failures = append(failures, fmt.Sprintf("%s: %v", path, err))
					mu.Unlock()
				}
				bar.Increment()
			}
		}()
	}
	wg.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d scenarios failed:\n  %s",
			len(failures), len(files), strings.Join(failures, "\n  "))
	}
	return nil
}

func analyzeFile(cat *catalog.Catalog, path string) error {
	sc, params, err := scenario.Load(path)
	if err != nil {
		return err
	}
	sc.Equipment, err = cat.ResolveAll(sc.Equipment)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(sc, params)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".result.json"
	return os.WriteFile(out, data, 0o644)
}

func maxParallelism() int {
	maxProcs := runtime.GOMAXPROCS(0)
	numCPU := runtime.NumCPU()
	if maxProcs < numCPU {
		return maxProcs
	}
	return numCPU
}
