package analytics

import (
	"math"
	"sync"
	"time"

	"profitpilot/models"
	"profitpilot/utils"

	"gonum.org/v1/gonum/stat"
	"gorm.io/gorm"
)

// DailyCount is the observed number of purchases on one day.
type DailyCount struct {
	Date  time.Time
	Count float64
}

// Engine fits a purchase-volume model over the purchases table and serves
// a one-year daily forecast. The fitted curve is a linear trend plus
// month-of-year seasonal offsets; prediction bounds come from the residual
// spread. The fit is cached until the underlying data changes.
type Engine struct {
	db *gorm.DB

	mu       sync.Mutex
	forecast []models.ForecastPoint
	history  []DailyCount
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

func (e *Engine) loadDaily() ([]DailyCount, error) {
	type row struct {
		Day   string
		Count float64
	}
	var rows []row
	err := e.db.Model(&Purchase{}).
		Select("date(timestamp) AS day, count(*) AS count").
		Group("day").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return nil, utils.NewStorageError("failed to load daily purchase counts", err)
	}

	counts := make([]DailyCount, 0, len(rows))
	for _, r := range rows {
		day, err := time.Parse(models.DateLayout, r.Day)
		if err != nil {
			continue
		}
		counts = append(counts, DailyCount{Date: day, Count: r.Count})
	}
	return counts, nil
}

// fit builds the forecast from daily counts. Needs at least two days of
// history for a trend line.
func fit(history []DailyCount, horizon int) []models.ForecastPoint {
	if len(history) < 2 {
		return []models.ForecastPoint{}
	}

	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, d := range history {
		xs[i] = float64(i)
		ys[i] = d.Count
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	// Month-of-year means of the detrended series give the seasonal part.
	seasonalSum := map[time.Month]float64{}
	seasonalN := map[time.Month]float64{}
	residuals := make([]float64, len(history))
	for i, d := range history {
		r := ys[i] - (alpha + beta*xs[i])
		seasonalSum[d.Date.Month()] += r
		seasonalN[d.Date.Month()]++
		residuals[i] = r
	}
	seasonal := map[time.Month]float64{}
	for m, sum := range seasonalSum {
		seasonal[m] = sum / seasonalN[m]
	}

	for i, d := range history {
		residuals[i] -= seasonal[d.Date.Month()]
	}
	sigma := math.Sqrt(stat.Variance(residuals, nil))
	margin := 1.96 * sigma

	last := history[len(history)-1].Date
	points := make([]models.ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		day := last.AddDate(0, 0, i)
		x := float64(len(history) - 1 + i)
		yhat := alpha + beta*x + seasonal[day.Month()]
		points = append(points, models.ForecastPoint{
			Date:      day.Format(models.DateLayout),
			Predicted: yhat,
			Lower:     yhat - margin,
			Upper:     yhat + margin,
		})
	}
	return points
}

// Forecast returns the cached one-year forecast, fitting it first if
// needed.
func (e *Engine) Forecast() ([]models.ForecastPoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.forecast == nil {
		if err := e.refitLocked(); err != nil {
			return nil, err
		}
	}
	return e.forecast, nil
}

// Refit discards the cache and fits the model again.
func (e *Engine) Refit() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.refitLocked()
}

func (e *Engine) refitLocked() error {
	history, err := e.loadDaily()
	if err != nil {
		return err
	}
	e.history = history
	e.forecast = fit(history, 365)
	return nil
}

// History returns the observed daily counts backing the current fit.
func (e *Engine) History() ([]DailyCount, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.forecast == nil {
		if err := e.refitLocked(); err != nil {
			return nil, err
		}
	}
	return e.history, nil
}

// AddTransaction records a purchase and invalidates the cached fit so the
// next forecast sees it.
func (e *Engine) AddTransaction(p Purchase) error {
	if p.Timestamp.IsZero() {
		return utils.NewInputError("transaction timestamp is required")
	}
	if p.Cost < 0 {
		return utils.NewInputError("transaction cost must not be negative")
	}
	if p.Sales == 0 {
		p.Sales = 1
	}
	if err := e.db.Create(&p).Error; err != nil {
		return utils.NewStorageError("failed to insert transaction", err)
	}

	e.mu.Lock()
	e.forecast = nil
	e.history = nil
	e.mu.Unlock()
	return nil
}
