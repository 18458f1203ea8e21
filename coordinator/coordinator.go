package coordinator

import (
	"errors"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/bamode/mandelbrot/fractal"
	"github.com/bamode/mandelbrot/misc"
	"github.com/bamode/mandelbrot/palette"
	"github.com/bamode/mandelbrot/render"
	"github.com/bamode/mandelbrot/rpc"
	"github.com/bamode/mandelbrot/task"
)

// Coordinator owns the pixel buffer and the task queue for one distributed
// render. Workers pull row bands over RPC and return them filled; every
// row is written to its own disjoint slice of the buffer, so assembly
// needs no locking beyond the ingest loop itself being sequential.
type Coordinator struct {
	bounds         fractal.Bounds
	clients        map[string]*rpc.TcpClient
	job            task.Job
	logger         bslogger.Logger
	mutex          sync.Mutex
	pixels         []byte
	rowsDone       int
	settings       settings
	stride         int
	tasksDone      chan task.Band
	tasksHandedOut map[string]map[uint]task.Band
	tasksTodo      chan task.Band
	workerWait     *sync.WaitGroup

	Server rpc.TcpServer
}

func NewCoordinator(settingsFile string) *Coordinator {
	settings := NewSettings(settingsFile)

	c := &Coordinator{
		clients:        make(map[string]*rpc.TcpClient),
		logger:         bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		settings:       settings,
		tasksHandedOut: make(map[string]map[uint]task.Band),
		workerWait:     &sync.WaitGroup{},
	}
	misc.CheckError(c.resolveJob(), c.logger, misc.Fatal)

	c.stride = c.bounds.Width * 3
	c.pixels = make([]byte, c.stride*c.bounds.Height)
	c.tasksDone = make(chan task.Band, c.bounds.Height)
	c.tasksTodo = make(chan task.Band, c.bounds.Height)

	// One band per row, all queued up front. The channel is never closed
	// so bands from lost workers can be requeued.
	for row := 0; row < c.bounds.Height; row++ {
		c.tasksTodo <- task.Band{ID: uint(row), Row: row}
	}
	c.logger.Infof("Queued %d row bands", c.bounds.Height)

	c.Server = rpc.NewTcpServer(c, settings.ServerAddress, "CoordinatorServer")
	misc.CheckError(c.Server.Run(), c.Server.Logger, misc.Fatal)

	go c.tickers()

	return c
}

// resolveJob turns the settings strings into the wire job all workers
// share. Input validation failures land here, before any task is handed
// out.
func (c *Coordinator) resolveJob() error {
	bounds, err := fractal.ParseBounds(c.settings.Pixels)
	if err != nil {
		return err
	}
	upperLeft, err := fractal.ParseComplex(c.settings.UpperLeft)
	if err != nil {
		return err
	}
	lowerRight, err := fractal.ParseComplex(c.settings.LowerRight)
	if err != nil {
		return err
	}
	kind, err := fractal.ParseKind(c.settings.Fractal)
	if err != nil {
		return err
	}

	seed := fractal.DefaultJuliaSeed
	if c.settings.Seed != "" {
		seed, err = fractal.ParseComplex(c.settings.Seed)
		if err != nil {
			return err
		}
	}

	var knots []palette.Knot
	if c.settings.PaletteFile != "" {
		knots, err = palette.LoadFile(c.settings.PaletteFile)
	} else {
		knots, err = palette.Lookup(c.settings.Palette)
	}
	if err != nil {
		return err
	}
	// Reject bad knot tables now rather than on every worker.
	if _, err := palette.Build(knots); err != nil {
		return err
	}

	rect := fractal.Rectangle{UpperLeft: upperLeft, LowerRight: lowerRight}
	corrected := rect.CorrectAspect(bounds)
	if corrected != rect {
		c.logger.Infof("Corrected upper left to %v", corrected.UpperLeft)
		c.logger.Infof("Corrected lower right to %v", corrected.LowerRight)
	}

	c.bounds = bounds
	c.job = task.NewJob(bounds, corrected, kind, seed, knots)
	return nil
}

func (c *Coordinator) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-rollCall.C:
			c.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			c.mutex.Lock()
			clients := make([]*rpc.TcpClient, 0, len(c.clients))
			for _, v := range c.clients {
				clients = append(clients, v)
			}
			c.mutex.Unlock()
			for _, v := range clients {
				var reply bool
				err := v.Call("Worker.RollCall", junk, &reply)
				if err != nil {
					c.logger.Warningf("Worker %s missed roll call: %s", v.Name, err)

					var nothing misc.Nothing
					misc.CheckError(c.DeRegisterWorker(v.Name, &nothing), c.logger, misc.Warning)
				}
			}

		case <-heartBeat.C:
			c.logger.Debug("Heart beat ticker")
			c.logger.Infof("Rows [Done: %d] [Todo: %d] | Workers [%d]", c.rowsDone, c.bounds.Height-c.rowsDone, len(c.clients))
		}
	}
}

// Run ingests finished bands until the image is complete, encodes it, and
// shuts the server down once every worker has deregistered.
func (c *Coordinator) Run() {
	c.logger.Info("Ingesting row bands")
	startTime := time.Now()

	for c.rowsDone < c.bounds.Height {
		band := <-c.tasksDone

		copy(c.pixels[band.Row*c.stride:(band.Row+1)*c.stride], band.Pixels)
		c.rowsDone++

		c.mutex.Lock()
		if handed, ok := c.tasksHandedOut[band.WorkerAddress]; ok {
			delete(handed, band.ID)
		}
		c.mutex.Unlock()
	}
	c.logger.Infof("Done ingesting %d rows in %s", c.rowsDone, time.Since(startTime))

	err := render.WriteImage(c.pixels, c.bounds, c.settings.OutFile)
	misc.CheckError(err, c.logger, misc.Fatal)
	c.logger.Infof("Saved image to %s", c.settings.OutFile)

	c.logger.Infof("Waiting for %d workers to disconnect", len(c.clients))
	c.workerWait.Wait()
	misc.CheckError(c.Server.Stop(), c.logger, misc.Warning)
	c.logger.Info("Shutting down")
}

func (c *Coordinator) RegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	client := rpc.NewTcpClient(workerServerAddress, workerServerAddress)
	if err := client.Connect(); err != nil {
		return err
	}

	c.mutex.Lock()
	c.clients[workerServerAddress] = &client
	c.tasksHandedOut[workerServerAddress] = make(map[uint]task.Band)
	c.mutex.Unlock()

	c.logger.Infof("Worker joined: %s", workerServerAddress)
	c.workerWait.Add(1)

	return nil
}

func (c *Coordinator) DeRegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	// Put bands this worker never returned back into the todo pool.
	c.mutex.Lock()
	handed := c.tasksHandedOut[workerServerAddress]
	client := c.clients[workerServerAddress]
	delete(c.tasksHandedOut, workerServerAddress)
	delete(c.clients, workerServerAddress)
	c.mutex.Unlock()

	for _, band := range handed {
		band.WorkerAddress = ""
		c.tasksTodo <- band
	}
	if len(handed) > 0 {
		c.logger.Warningf("Requeued %d bands from %s", len(handed), workerServerAddress)
	}

	if client != nil {
		misc.CheckError(client.Disconnect(), c.logger, misc.Warning)
	}

	c.logger.Infof("Worker left: %s", workerServerAddress)
	c.workerWait.Done()

	return nil
}

func (c *Coordinator) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}

func (c *Coordinator) GetJob(nothing misc.Nothing, job *task.Job) error {
	*job = c.job
	return nil
}

func (c *Coordinator) GetTask(workerAddress string, band *task.Band) error {
	select {
	case todo := <-c.tasksTodo:
		todo.WorkerAddress = workerAddress
		c.mutex.Lock()
		if handed, ok := c.tasksHandedOut[workerAddress]; ok {
			handed[todo.ID] = todo
		}
		c.mutex.Unlock()
		*band = todo
		return nil
	default:
		c.logger.Debug("Telling worker that all bands are handed out")
		return errors.New("all tasks handed out")
	}
}

func (c *Coordinator) ReturnTask(done task.Band, nothing *misc.Nothing) error {
	c.tasksDone <- done
	return nil
}
