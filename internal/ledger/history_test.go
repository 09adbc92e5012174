package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"earnplay/internal/domain"
	"earnplay/internal/ledger"
	"earnplay/internal/ledger/mocks"
)

func TestLedger_History(t *testing.T) {
	l := ledger.New(0, nil)
	for i := 1; i <= 45; i++ {
		_, err := l.Credit(int64(i), fmt.Sprintf("credit %d", i))
		require.NoError(t, err)
	}

	p := l.History(0, 0, "")
	require.Equal(t, 1, p.Page)
	require.Equal(t, ledger.DefaultPageSize, p.PageSize)
	require.Equal(t, 45, p.Total)
	require.Equal(t, 3, p.TotalPages)
	require.Len(t, p.Transactions, 20)
	require.Equal(t, "credit 45", p.Transactions[0].Description)

	p = l.History(3, 20, "")
	require.Len(t, p.Transactions, 5)
	require.Equal(t, "credit 1", p.Transactions[4].Description)

	p = l.History(9, 20, "")
	require.Empty(t, p.Transactions)

	p = l.History(1, 500, "")
	require.Equal(t, ledger.DefaultPageSize, p.PageSize)
}

func TestLedger_HistoryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	mg := mocks.NewMockGateway(ctrl)
	mg.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(accept)

	l := ledger.New(5000, mg)
	_, err := l.Credit(50, "Completed: Space Shooter")
	require.NoError(t, err)
	_, err = l.Debit(t.Context(), ledger.Withdrawal{Amount: amount("2"), Method: domain.MethodPayPal, Details: "me@example.com"})
	require.NoError(t, err)

	p := l.History(1, 10, domain.TypeWithdrawal)
	require.Equal(t, 1, p.Total)
	require.Equal(t, domain.TypeWithdrawal, p.Transactions[0].Type)

	p = l.History(1, 10, domain.TypeEarning)
	require.Equal(t, 1, p.Total)
	require.Equal(t, domain.TypeEarning, p.Transactions[0].Type)
}

func TestLedger_WeeklyActivity(t *testing.T) {
	// Sunday 2026-10-11, noon UTC.
	now := time.Date(2026, 10, 11, 12, 0, 0, 0, time.UTC)
	clock := now
	l := ledger.New(0, nil, ledger.WithClock(func() time.Time { return clock }))

	credit := func(at time.Time, coins int64) {
		clock = at
		_, err := l.Credit(coins, "earn")
		require.NoError(t, err)
	}
	credit(now.AddDate(0, 0, -7), 999) // outside the window
	credit(now.AddDate(0, 0, -6), 400) // Monday
	credit(now.AddDate(0, 0, -2), 300) // Friday
	credit(now.AddDate(0, 0, -2).Add(3*time.Hour), 500)
	credit(now, 900) // Sunday

	got := l.WeeklyActivity(now)
	require.Equal(t, []ledger.DayActivity{
		{Name: "Mon", Coins: 400},
		{Name: "Tue", Coins: 0},
		{Name: "Wed", Coins: 0},
		{Name: "Thu", Coins: 0},
		{Name: "Fri", Coins: 800},
		{Name: "Sat", Coins: 0},
		{Name: "Sun", Coins: 900},
	}, got)
}
