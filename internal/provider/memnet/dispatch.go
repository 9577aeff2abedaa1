package memnet

import "sync"

// dispatcher runs posted functions one at a time, in order, on its own
// goroutine. Posting never blocks, so handlers may post or stop from inside
// a dispatched function.
type dispatcher struct {
	mu       sync.Mutex
	queue    []func()
	draining bool
	stopped  bool

	wake chan struct{}
	quit chan struct{}
	once sync.Once
}

func newDispatcher() *dispatcher {
	d := &dispatcher{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
	go d.run()
	return d
}

// post queues fn. It reports false once the dispatcher is draining or stopped.
func (d *dispatcher) post(fn func()) bool {
	d.mu.Lock()
	if d.draining || d.stopped {
		d.mu.Unlock()
		return false
	}
	d.queue = append(d.queue, fn)
	d.mu.Unlock()
	d.signal()
	return true
}

// finish queues fn as the last function; the dispatcher exits after running it.
func (d *dispatcher) finish(fn func()) bool {
	d.mu.Lock()
	if d.draining || d.stopped {
		d.mu.Unlock()
		return false
	}
	d.queue = append(d.queue, fn)
	d.draining = true
	d.mu.Unlock()
	d.signal()
	return true
}

// stop drops queued functions. A function already running completes.
func (d *dispatcher) stop() {
	d.mu.Lock()
	d.stopped = true
	d.queue = nil
	d.mu.Unlock()
	d.once.Do(func() { close(d.quit) })
}

func (d *dispatcher) signal() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *dispatcher) next() (fn func(), ok bool, last bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || len(d.queue) == 0 {
		return nil, false, d.stopped || d.draining
	}
	fn = d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]
	return fn, true, false
}

func (d *dispatcher) run() {
	for {
		select {
		case <-d.quit:
			return
		case <-d.wake:
		}
		for {
			fn, ok, last := d.next()
			if !ok {
				if last {
					d.once.Do(func() { close(d.quit) })
					return
				}
				break
			}
			fn()
		}
	}
}
