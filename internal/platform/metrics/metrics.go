package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "fees_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	paymentsRecorded *prometheus.CounterVec
	paymentLatency   *prometheus.HistogramVec

	receiptConflicts prometheus.Counter

	sweepRuns        *prometheus.CounterVec
	sweepTransitions prometheus.Counter

	reportExports *prometheus.CounterVec
)

// Init registers the payment and ledger metrics with the default registry.
// Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		paymentsRecorded = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "payments_recorded_total",
				Help: "Total payment recordings by result",
			},
			[]string{"result"},
		)
		paymentLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "payment_record_latency_seconds",
				Help:    "Payment recording latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		receiptConflicts = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "receipt_number_conflicts_total",
				Help: "Total receipt number collisions retried",
			},
		)

		sweepRuns = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "overdue_sweep_runs_total",
				Help: "Total overdue sweep runs by result",
			},
			[]string{"result"},
		)
		sweepTransitions = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "overdue_sweep_transitions_total",
				Help: "Total assignments marked overdue by the sweep",
			},
		)

		reportExports = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_exports_total",
				Help: "Total collection report exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			paymentsRecorded,
			paymentLatency,
			receiptConflicts,
			sweepRuns,
			sweepTransitions,
			reportExports,
		)
	})
}

// ObservePayment records a payment attempt duration and result.
func ObservePayment(err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if paymentsRecorded != nil {
		paymentsRecorded.WithLabelValues(result).Inc()
	}
	if paymentLatency != nil {
		paymentLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncReceiptConflict increments the receipt collision counter.
func IncReceiptConflict() {
	if receiptConflicts != nil {
		receiptConflicts.Inc()
	}
}

// ObserveSweep records a sweep run and how many rows it transitioned.
func ObserveSweep(err error, transitioned int) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if sweepRuns != nil {
		sweepRuns.WithLabelValues(result).Inc()
	}
	if err == nil && transitioned > 0 && sweepTransitions != nil {
		sweepTransitions.Add(float64(transitioned))
	}
}

// IncReportExport increments the export counter for a format.
func IncReportExport(format string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if reportExports != nil {
		reportExports.WithLabelValues(format, result).Inc()
	}
}
