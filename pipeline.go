package rgb332

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	frame "github.com/bodgit/rgb332/image"
)

const (
	// Extension is appended to converted files
	Extension = ".rgb332"

	numWorkers = 10
)

// Output returns the path Scan writes the conversion of src to. The source
// extension is kept so logo.png and logo.jpg don't collide.
func Output(src string) string {
	return src + Extension
}

func isImage(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".bmp", ".gif", ".jpeg", ".jpg", ".png":
		return true
	}
	return false
}

func (c *Converter) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Converter) imageWorker(ctx context.Context, in <-chan string, f frame.Format) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if _, err := c.ConvertFile(file, Output(file), f); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	var first error
	for err := range errc {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan converts every image found under path, writing each frame next to
// its source with the .rgb332 extension. The first error stops the scan.
func (c *Converter) Scan(path string, f frame.Format) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findImages(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errc, err := c.imageWorker(ctx, files, f)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(cancelFunc, errcList...)
}
