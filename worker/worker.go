package worker

import (
	"fmt"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/bamode/mandelbrot/misc"
	"github.com/bamode/mandelbrot/render"
	"github.com/bamode/mandelbrot/rpc"
	"github.com/bamode/mandelbrot/task"
)

// Worker pulls row bands from the coordinator, renders them with the
// shared core, and returns the pixels. All render parameters come from the
// coordinator's job, so any two workers produce identical bytes for the
// same row.
type Worker struct {
	coordinatorAddress string
	logger             bslogger.Logger
	myAddress          string
	renderer           *render.Renderer
	tasksCompleted     int

	ServerClient rpc.TcpServerClient
}

func NewWorker(settingsFile string) *Worker {
	settings := NewSettings(settingsFile)
	w := &Worker{
		coordinatorAddress: settings.CoordinatorAddress,
		logger:             bslogger.NewLogger("Worker", bslogger.Normal, nil),
	}

	port, err := misc.GetFreePort()
	misc.CheckError(err, w.logger, misc.Fatal)
	w.logger.Debugf("Found free port: %d", port)
	w.myAddress = fmt.Sprintf("%s:%d", misc.GetLocalAddress(), port)
	w.logger = bslogger.NewLogger(fmt.Sprintf("Worker %s", w.myAddress), bslogger.Normal, nil)
	w.ServerClient = rpc.NewTcpServerClient(w, w.myAddress, w.myAddress, settings.CoordinatorAddress, settings.CoordinatorAddress)
	misc.CheckError(w.ServerClient.Server.Run(), w.logger, misc.Fatal)

	// Register with the coordinator and pick up the render job.
	misc.CheckError(w.ServerClient.Client.Connect(), w.logger, misc.Fatal)
	var nothing misc.Nothing
	misc.CheckError(w.ServerClient.Client.Call("Coordinator.RegisterWorker", w.myAddress, &nothing), w.logger, misc.Fatal)

	var job task.Job
	misc.CheckError(w.ServerClient.Client.Call("Coordinator.GetJob", nothing, &job), w.logger, misc.Fatal)
	settingsRender, err := job.Settings()
	misc.CheckError(err, w.logger, misc.Fatal)
	w.renderer, err = render.NewRenderer(settingsRender)
	misc.CheckError(err, w.logger, misc.Fatal)

	go w.tickers()

	return w
}

func (w *Worker) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-rollCall.C:
			w.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			var reply bool
			err := w.ServerClient.Client.Call("Coordinator.RollCall", junk, &reply)
			if err != nil {
				// Cannot reach the coordinator, so shut down.
				w.logger.Warningf("Coordinator missed roll call: %s", err)
				w.ServerClient.Client.Disconnect()
				w.ServerClient.Server.Stop()
				return
			}

		case <-heartBeat.C:
			w.logger.Debug("Heart beat ticker")
			w.logger.Infof("Bands [Completed: %d]", w.tasksCompleted)
		}
	}
}

// Run processes bands until the coordinator reports all of them handed
// out, then deregisters and shuts down.
func (w *Worker) Run() {
	w.logger.Info("Processing bands")

	var nothing misc.Nothing
	startTime := time.Now()

	for {
		var band task.Band
		err := w.ServerClient.Client.Call("Coordinator.GetTask", w.myAddress, &band)
		if err != nil {
			// Expected once the queue is drained.
			if err.Error() == "all tasks handed out" {
				break
			}
			w.logger.Fatalf("Unable to get a band: %s", err.Error())
		}

		band.Pixels = w.renderer.RenderRow(band.Row)

		err = w.ServerClient.Client.Call("Coordinator.ReturnTask", band, &nothing)
		if err != nil {
			w.logger.Errorf("Unable to return a band: %s", err.Error())
			break
		}
		w.tasksCompleted++
	}

	w.logger.Info("Done processing bands")
	w.logger.Debugf("Processed %d bands in %s", w.tasksCompleted, time.Since(startTime))

	w.logger.Info("Shutting down")
	w.ServerClient.Client.Call("Coordinator.DeRegisterWorker", w.myAddress, &nothing)
	misc.CheckError(w.ServerClient.Client.Disconnect(), w.logger, misc.Warning)
	misc.CheckError(w.ServerClient.Server.Stop(), w.logger, misc.Warning)
}

func (w *Worker) RollCall(request misc.Nothing, reply *bool) error {
	*reply = true
	return nil
}
