package commands

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.50 EUR", formatAmount(1250, "EUR"))
	assert.Equal(t, "0.05 USD", formatAmount(5, "USD"))
	assert.Equal(t, "-10.00 EUR", formatAmount(-1000, "EUR"))
}

func TestPaginationSummary(t *testing.T) {
	t.Parallel()

	offset, total := 20, 45

	assert.Equal(t, "Showing 3", paginationSummary(3, rtr.Pagination{}))
	assert.Equal(t, "Showing 3 from offset 20 of 45", paginationSummary(3, rtr.Pagination{Offset: &offset, Total: &total}))
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	moment := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	prio := 10

	assert.Equal(t, "2026-01-02T03:04:05Z", formatTime(moment))
	assert.Equal(t, NotAvailable, formatTime(time.Time{}))
	assert.Equal(t, NotAvailable, formatOptionalTime(nil))
	assert.Equal(t, NotAvailable, formatList([]string(nil)))
	assert.Equal(t, "OK, CLIENT_HOLD", formatList([]rtr.DomainStatus{"OK", "CLIENT_HOLD"}))
	assert.Equal(t, "1, 2", formatInts([]int{1, 2}))
	assert.Equal(t, "10", formatOptionalInt(&prio))
	assert.Equal(t, NotAvailable, formatInt(0))
}
