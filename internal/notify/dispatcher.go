package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Dispatcher decouples voucher creation from email delivery. Enqueue never
// blocks the request path: when the queue is full the notification is
// dropped and logged. Delivery failures are logged and discarded.
type Dispatcher struct {
	mailer Mailer
	log    *zap.Logger

	queue    chan VoucherNotification
	stopChan chan struct{}
	wg       sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewDispatcher(mailer Mailer, log *zap.Logger, queueSize int) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		mailer:   mailer,
		log:      log,
		queue:    make(chan VoucherNotification, queueSize),
		stopChan: make(chan struct{}),
	}
}

// Enqueue hands a notification to the worker. It reports whether the
// notification was accepted.
func (d *Dispatcher) Enqueue(n VoucherNotification) bool {
	select {
	case d.queue <- n:
		return true
	default:
		d.log.Warn("notification queue full, dropping",
			zap.String("voucher_code", n.VoucherCode),
			zap.String("user_email", n.UserEmail))
		return false
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		d.wg.Add(1)
		go d.run()
	})
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case n := <-d.queue:
			if err := d.mailer.Send(n); err != nil {
				d.log.Error("voucher notification failed",
					zap.String("voucher_code", n.VoucherCode),
					zap.String("user_email", n.UserEmail),
					zap.Error(err))
				continue
			}
			d.log.Info("voucher notification sent",
				zap.String("voucher_code", n.VoucherCode),
				zap.String("user_email", n.UserEmail))
		case <-d.stopChan:
			return
		}
	}
}

// Stop shuts the worker down. Queued notifications that were not yet picked
// up are dropped; delivery is best effort by contract.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
		d.wg.Wait()
	})
}
