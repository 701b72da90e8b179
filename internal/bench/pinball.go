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

// Pinball builds the paired ping-pong benchmark for one channel
// implementation under one executor. Each pair exchanges messages over two
// channels for a fixed number of rounds, so both a request and its
// response count toward throughput.
func Pinball(label string, newChannel channel.Factory[int], newExecutor executor.Factory, sweep config.PinballSweep, warmup int) Func {
	return func(samples int) iter.Seq[Result] {
		return func(yield func(Result) bool) {
			for _, pairs := range sweep.Pairs {
				for i := 0; i < warmup; i++ {
					runPinball(newChannel, newExecutor, pairs, sweep.Rounds, sweep.Capacity)
				}
				throughput := make([]float64, 0, samples)
				for i := 0; i < samples; i++ {
					total := pairs * 2 * sweep.Rounds
					exchanged, elapsed := runPinball(newChannel, newExecutor, pairs, sweep.Rounds, sweep.Capacity)
					if exchanged != total {
						panic(fmt.Sprintf("bench: pinball exchanged %d of %d messages", exchanged, total))
					}
					throughput = append(throughput, float64(total)/elapsed.Seconds())
				}
				res := Result{
					Label:      label,
					Parameter:  strconv.Itoa(pairs),
					Throughput: throughput,
				}
				if !yield(res) {
					return
				}
			}
		}
	}
}

// runPinball executes one pinball iteration. Each pair gets two channels:
// the driver sends a message and waits for the echo to bounce it back,
// rounds times. The driver counts both directions.
func runPinball(newChannel channel.Factory[int], newExecutor executor.Factory, pairs, rounds, capacity int) (int, time.Duration) {
	ex := newExecutor()
	counts := make([]int, pairs)
	for p := 0; p < pairs; p++ {
		serveTx, serveRx := newChannel(capacity)
		replyTx, replyRx := newChannel(capacity)
		ex.Spawn(func() {
			for {
				v, ok := serveRx.Recv()
				if !ok {
					replyTx.Close()
					return
				}
				replyTx.Send(v)
			}
		})
		idx := p
		ex.Spawn(func() {
			n := 0
			for r := 0; r < rounds; r++ {
				serveTx.Send(r)
				n++
				if _, ok := replyRx.Recv(); ok {
					n++
				}
			}
			serveTx.Close()
			counts[idx] = n
		})
	}

	start := time.Now()
	ex.JoinAll()
	elapsed := time.Since(start)

	exchanged := 0
	for _, n := range counts {
		exchanged += n
	}
	return exchanged, elapsed
}
