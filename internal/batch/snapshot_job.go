package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"repairshop/internal/domain/customer"
	"repairshop/internal/domain/forms"
	"repairshop/internal/domain/ticket"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeCustomersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "repairshop_active_customers",
		Help: "Number of active customers at the last snapshot.",
	})
	openTicketsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "repairshop_open_tickets",
		Help: "Number of open (not completed) tickets at the last snapshot.",
	})
	technicianRosterGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "repairshop_technician_roster_size",
		Help: "Number of usable technician accounts in the identity provider directory at the last snapshot.",
	})
)

// SnapshotJob exports shop-level counts as prometheus gauges. It runs on
// a cron schedule; a failure of one count does not stop the others.
type SnapshotJob struct {
	customers customer.CustomerRepository
	tickets   ticket.TicketRepository
	directory forms.TechDirectory
	logger    *slog.Logger
}

func NewSnapshotJob(
	customers customer.CustomerRepository,
	tickets ticket.TicketRepository,
	directory forms.TechDirectory,
	logger *slog.Logger,
) *SnapshotJob {
	if customers == nil || tickets == nil || directory == nil || logger == nil {
		panic("SnapshotJob dependencies cannot be nil")
	}
	return &SnapshotJob{
		customers: customers,
		tickets:   tickets,
		directory: directory,
		logger:    logger.With("job", "ShopSnapshot"),
	}
}

func (j *SnapshotJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting shop snapshot job.")

	var firstErr error

	activeCustomers, err := j.customers.CountActive(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count active customers", slog.Any("error", err))
		firstErr = fmt.Errorf("failed to count active customers: %w", err)
	} else {
		activeCustomersGauge.Set(float64(activeCustomers))
	}

	openTickets, err := j.tickets.CountOpen(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count open tickets", slog.Any("error", err))
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to count open tickets: %w", err)
		}
	} else {
		openTicketsGauge.Set(float64(openTickets))
	}

	techs, err := j.directory.ListTechs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to fetch technician roster", slog.Any("error", err))
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to fetch technician roster: %w", err)
		}
	} else {
		technicianRosterGauge.Set(float64(len(techs)))
	}

	j.logger.InfoContext(ctx, "Shop snapshot job finished.",
		slog.Int64("activeCustomers", activeCustomers),
		slog.Int64("openTickets", openTickets),
		slog.Int("technicians", len(techs)),
		slog.Duration("duration", time.Since(startTime)))
	return firstErr
}
