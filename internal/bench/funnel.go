package bench

import (
	"fmt"
	"iter"
	"strconv"
	"time"

	"chanbench/internal/channel"
	"chanbench/internal/config"
	"chanbench/internal/executor"
)

// Funnel builds the many-producers one-consumer benchmark for one channel
// implementation under one executor. Every parameter value of the sweep
// runs on a freshly constructed channel and executor; warmup iterations
// run first and are not measured.
func Funnel(label string, newChannel channel.Factory[int], newExecutor executor.Factory, sweep config.FunnelSweep, warmup int) Func {
	return func(samples int) iter.Seq[Result] {
		return func(yield func(Result) bool) {
			for _, producers := range sweep.Producers {
				for i := 0; i < warmup; i++ {
					runFunnel(newChannel, newExecutor, producers, sweep.MessagesPerProducer, sweep.Capacity)
				}
				throughput := make([]float64, 0, samples)
				for i := 0; i < samples; i++ {
					total := producers * sweep.MessagesPerProducer
					received, elapsed := runFunnel(newChannel, newExecutor, producers, sweep.MessagesPerProducer, sweep.Capacity)
					if received != total {
						panic(fmt.Sprintf("bench: funnel consumer received %d of %d messages", received, total))
					}
					throughput = append(throughput, float64(total)/elapsed.Seconds())
				}
				res := Result{
					Label:      label,
					Parameter:  strconv.Itoa(producers),
					Throughput: throughput,
				}
				if !yield(res) {
					return
				}
			}
		}
	}
}

// runFunnel executes one funnel iteration: producers each send their quota
// into the shared channel and close their handle; the consumer drains
// until closure. The timer covers the interval from "everything spawned"
// to "all tasks joined".
func runFunnel(newChannel channel.Factory[int], newExecutor executor.Factory, producers, quota, capacity int) (int, time.Duration) {
	ex := newExecutor()
	tx, rx := newChannel(capacity)

	received := 0
	ex.Spawn(func() {
		for {
			if _, ok := rx.Recv(); !ok {
				return
			}
			received++
		}
	})
	for p := 0; p < producers; p++ {
		s := tx.Clone()
		ex.Spawn(func() {
			for i := 0; i < quota; i++ {
				s.Send(i)
			}
			s.Close()
		})
	}
	tx.Close()

	start := time.Now()
	ex.JoinAll()
	return received, time.Since(start)
}
