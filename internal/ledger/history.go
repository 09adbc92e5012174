package ledger

import (
	"time"

	"earnplay/internal/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one page of the transaction history.
type Page struct {
	Transactions []domain.Transaction `json:"transactions"` // Rows on this page, newest first
	Page         int                  `json:"page"`         // Current page
	PageSize     int                  `json:"page_size"`    // Page size
	Total        int                  `json:"total"`        // Rows matching the filter
	TotalPages   int                  `json:"total_pages"`  // Total pages
}

// History returns a page of transactions, optionally restricted to one type.
// Out of range page numbers and sizes fall back to the defaults.
func (l *Ledger) History(page, pageSize int, kind domain.TransactionType) Page {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	l.mu.Lock()
	matched := make([]domain.Transaction, 0, len(l.txs))
	for _, tx := range l.txs {
		if kind == "" || tx.Type == kind {
			matched = append(matched, tx)
		}
	}
	l.mu.Unlock()

	total := len(matched)
	offset := (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	end := min(offset+pageSize, total)
	return Page{
		Transactions: matched[offset:end],
		Page:         page,
		PageSize:     pageSize,
		Total:        total,
		TotalPages:   (total + pageSize - 1) / pageSize,
	}
}

// DayActivity is the number of coins earned on one day.
type DayActivity struct {
	Name  string `json:"name"`
	Coins int64  `json:"coins"`
}

// WeeklyActivity returns coins earned on each of the seven days ending on
// now's day, oldest first.
func (l *Ledger) WeeklyActivity(now time.Time) []DayActivity {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	first := today.AddDate(0, 0, -6)

	out := make([]DayActivity, 7)
	for i := range out {
		out[i].Name = first.AddDate(0, 0, i).Weekday().String()[:3]
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tx := range l.txs {
		if tx.Type != domain.TypeEarning {
			continue
		}
		d := tx.Date.In(now.Location())
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
		if day.Before(first) || day.After(today) {
			continue
		}
		idx := int(day.Sub(first).Hours()+12) / 24
		out[idx].Coins += tx.Coins
	}
	return out
}
