package renderer

import (
	"context"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile        *Tile
	Framebuffer *Framebuffer // Shared framebuffer to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	Stats RenderStats
	Error error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	ctx         context.Context
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID           int
	tileRenderer *TileRenderer
	taskQueue    chan TileTask
	resultQueue  chan TileResult
	pool         *WorkerPool // Reference to parent pool for context access
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the queues so that submitting never blocks.
func NewWorkerPool(scene Scene, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
		ctx:         context.Background(),
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:           i,
			tileRenderer: NewTileRenderer(scene),
			taskQueue:    wp.taskQueue,
			resultQueue:  wp.resultQueue,
			pool:         wp,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers. Tasks picked up after ctx is done are reported
// with ctx.Err() instead of being rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	wp.ctx = ctx
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := w.pool.ctx.Err(); err != nil {
			w.resultQueue <- TileResult{Error: err}
			continue
		}

		// Each tile has non-overlapping bounds, so writing to the shared
		// framebuffer is thread-safe
		stats := w.tileRenderer.RenderTileBounds(task.Tile.Bounds, task.Framebuffer)

		w.resultQueue <- TileResult{Stats: stats}
	}
}
