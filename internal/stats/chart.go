package stats

import (
	"strconv"
	"time"

	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

var weekLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var yearLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Total  float64   `json:"total"`
}

type ChartData struct {
	Week  Series `json:"week"`
	Month Series `json:"month"`
	Year  Series `json:"year"`
}

// ComputeChartData buckets logs into the week, month and year around ref.
// Binary habits contribute 1 per day that met target; others contribute the
// raw logged value.
func ComputeChartData(binary bool, target float64, logs LogMap, ref util.Date) ChartData {
	contribution := func(day util.Date) float64 {
		value := logs.ValueAt(day)
		if !binary {
			return value
		}
		if value >= target {
			return 1
		}
		return 0
	}

	return ChartData{
		Week:  weekSeries(ref, contribution),
		Month: monthSeries(ref, contribution),
		Year:  yearSeries(ref, contribution),
	}
}

func weekSeries(ref util.Date, contribution func(util.Date) float64) Series {
	s := Series{Labels: weekLabels, Values: make([]float64, 0, 7)}
	start := ref.StartOfWeek()
	for i := 0; i < 7; i++ {
		v := contribution(start.AddDays(i))
		s.Values = append(s.Values, v)
		s.Total += v
	}
	return s
}

func monthSeries(ref util.Date, contribution func(util.Date) float64) Series {
	n := util.DaysIn(ref.Year(), ref.Month())
	s := Series{Labels: make([]string, 0, n), Values: make([]float64, 0, n)}
	for day := 1; day <= n; day++ {
		v := contribution(util.NewDate(ref.Year(), ref.Month(), day))
		s.Labels = append(s.Labels, strconv.Itoa(day))
		s.Values = append(s.Values, v)
		s.Total += v
	}
	return s
}

func yearSeries(ref util.Date, contribution func(util.Date) float64) Series {
	s := Series{Labels: yearLabels, Values: make([]float64, 0, 12)}
	for month := time.January; month <= time.December; month++ {
		var sum float64
		for day := 1; day <= util.DaysIn(ref.Year(), month); day++ {
			sum += contribution(util.NewDate(ref.Year(), month, day))
		}
		s.Values = append(s.Values, sum)
		s.Total += sum
	}
	return s
}
