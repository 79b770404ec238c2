// Package scheduler implements a worker pool for executing async work with futures.
//
// The metadata service uses it to fan independent count queries out over a
// bounded number of connections (see services.MetadataService.GlobalBrief).
//
// # Architecture Overview
//
//	AddWork(fn) ──► work chan ──► run() ──► workQueue ──► dispatch()
//	                                 ▲                        │
//	                                 │ idle                   ▼
//	                                 └──────────────── worker.Work(request)
//
// run() is the only goroutine touching the queues. It reacts to three events:
//
//	case w := <-s.work:   // new work: queue it, dispatch
//	case <-s.idle:        // a worker finished: return it to the pool, dispatch
//	case <-s.close:       // shutdown: cancel queued work, wait for in-flight work
//
// # Futures
//
// AddWork returns a Future immediately. Its channel receives exactly one
// Result; Stop cancels the context handed to the work function.
//
//	future := sched.AddWork(func(ctx context.Context) (any, error) {
//	    return store.NumOfEndpoints(ctx)
//	})
//	result := <-future.C()
//
// # Panics
//
// A panicking work function is reported as an error result and its worker
// goes back to the pool.
//
// # Shutdown
//
// Close cancels the main context, answers queued work with context.Canceled
// and waits for in-flight workers. It is idempotent. AddWork after Close
// answers context.Canceled immediately.
package scheduler
