package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"raytracer/pkg/core"
)

// defaultSeed is the root seed used when the caller sets none. Fixed so
// renders are reproducible by default.
const defaultSeed = 42

// rowTask is one row of pixels to render
type rowTask struct {
	row    int
	pixels []core.Color // the image row this task owns
}

// rowResult reports the outcome of one row
type rowResult struct {
	row int
	err error
}

// workerPool renders rows in parallel. Rows are disjoint slices of the
// image buffer, so workers write without locking.
type workerPool struct {
	camera     *Camera
	scene      Scene
	tasks      chan rowTask
	results    chan rowResult
	numWorkers int
	wg         sync.WaitGroup
}

func newWorkerPool(camera *Camera, s Scene, height, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		camera:     camera,
		scene:      s,
		tasks:      make(chan rowTask, height),
		results:    make(chan rowResult, height),
		numWorkers: numWorkers,
	}
}

func (wp *workerPool) start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

func (wp *workerPool) stop() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
}

// run is the worker loop. Each row gets its own generator seeded from the
// root seed plus the row index, so results do not depend on how rows are
// distributed across workers.
func (wp *workerPool) run() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		random := rand.New(rand.NewSource(wp.camera.seed + int64(task.row)))
		wp.results <- rowResult{row: task.row, err: wp.renderRow(task, random)}
	}
}

// renderRow fills one row of pixels. A panic while evaluating the row is
// contained here so it cannot corrupt unrelated rows.
func (wp *workerPool) renderRow(task rowTask, random *rand.Rand) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("row %d: %v", task.row, r)
		}
	}()

	for col := range task.pixels {
		task.pixels[col] = wp.camera.samplePixel(col, task.row, wp.scene, random)
	}
	return nil
}

// Render computes the full pixel buffer for the scene. Pixels are
// evaluated independently with row granularity across NumCPU workers; the
// returned image is complete when the call returns. A row whose
// evaluation panicked is left black and reported in the error, without
// affecting any other row.
func (c *Camera) Render(s Scene) (*core.Image, error) {
	return c.render(s, 0)
}

// render is Render with an explicit worker count, for tests
func (c *Camera) render(s Scene, numWorkers int) (*core.Image, error) {
	image := core.NewImage(c.width, c.height)

	pool := newWorkerPool(c, s, c.height, numWorkers)
	pool.start()
	for row := 0; row < c.height; row++ {
		pool.tasks <- rowTask{row: row, pixels: image.Row(row)}
	}

	remaining := int64(c.height)
	var failures []error
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range pool.results {
			if result.err != nil {
				failures = append(failures, result.err)
			}
			left := atomic.AddInt64(&remaining, -1)
			if c.progress != nil {
				c.progress(int(left))
			}
		}
	}()

	pool.stop()
	<-done

	if len(failures) > 0 {
		return image, fmt.Errorf("%d of %d rows failed: %v", len(failures), c.height, failures[0])
	}
	return image, nil
}
