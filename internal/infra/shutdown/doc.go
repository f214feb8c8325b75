// Package shutdown ends a BPLS session cleanly.
//
// WithSignals turns SIGINT and SIGTERM into context cancellation, so the REPL
// stops between commands. Hooks registered on a Handler (autosave the
// workspace, close the store, flush metrics) run once, newest first, when the
// session ends for any reason.
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown("close store", store.Close)
//	defer h.Run()
package shutdown
