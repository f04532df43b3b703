package models

// ForecastPoint is one predicted day in the sales forecast.
type ForecastPoint struct {
	Date      string  `json:"ds"`
	Predicted float64 `json:"yhat"`
	Lower     float64 `json:"yhat_lower"`
	Upper     float64 `json:"yhat_upper"`
}

// WeeklyRevenue is the summed revenue for one ISO week, labelled
// "YYYY-Www".
type WeeklyRevenue struct {
	Week    string  `json:"week"`
	Revenue float64 `json:"cost"`
}
