package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business-level counters. Request-level metrics live in the metrics
// middleware; these track domain events worth alerting on.
var (
	emailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "business",
		Name:      "emails_sent_total",
		Help:      "Total invoice emails relayed through the provider",
	})

	emailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "business",
		Name:      "emails_failed_total",
		Help:      "Total invoice emails rejected by the provider",
	})

	opensRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "business",
		Name:      "email_opens_recorded_total",
		Help:      "Total open-tracking beacon hits that produced a row",
	})

	invoicesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "business",
		Name:      "invoices_created_total",
		Help:      "Total invoices created, by document type",
	}, []string{"type"})

	invoicesPaid = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "business",
		Name:      "invoices_paid_total",
		Help:      "Total invoices marked as paid",
	})

	pdfsRendered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "business",
		Name:      "pdfs_rendered_total",
		Help:      "Total invoice PDFs rendered",
	})

	jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "business",
		Name:      "jobs_processed_total",
		Help:      "Total background jobs processed, by type and outcome",
	}, []string{"job_type", "outcome"})
)

func RecordEmailSent()    { emailsSent.Inc() }
func RecordEmailFailed()  { emailsFailed.Inc() }
func RecordOpenRecorded() { opensRecorded.Inc() }

func RecordInvoiceCreated(docType string) { invoicesCreated.WithLabelValues(docType).Inc() }
func RecordInvoicePaid()                  { invoicesPaid.Inc() }
func RecordPDFRendered()                  { pdfsRendered.Inc() }

func RecordJobProcessed(jobType, outcome string) {
	jobsProcessed.WithLabelValues(jobType, outcome).Inc()
}
