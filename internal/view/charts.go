package view

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/shafran-admin/internal/models"
)

var monthNames = [12]string{"Yan", "Fev", "Mar", "Apr", "May", "Iyn", "Iyl", "Avg", "Sen", "Okt", "Noy", "Dek"}

// MonthLabels returns n short month names ending with now's month.
func MonthLabels(now time.Time, n int) []string {
	labels := make([]string, n)
	month := int(now.Month()) - 1
	for i := 0; i < n; i++ {
		idx := ((month-(n-1-i))%12 + 12) % 12
		labels[i] = monthNames[idx]
	}
	return labels
}

// DayLabels returns n DD.MM labels ending with now's day.
func DayLabels(now time.Time, n int) []string {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = now.AddDate(0, 0, -(n - 1 - i)).Format("02.01")
	}
	return labels
}

// Chart is a labelled series in chronological order.
type Chart struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// MonthlyChart turns a newest-first monthly window into a chronological chart.
func MonthlyChart(s models.Series, now time.Time) Chart {
	return Chart{Labels: MonthLabels(now, len(s)), Values: s.Reversed().Values()}
}

// DailyChart turns a newest-first daily window into a chronological chart.
func DailyChart(s models.Series, now time.Time) Chart {
	return Chart{Labels: DayLabels(now, len(s)), Values: s.Reversed().Values()}
}
